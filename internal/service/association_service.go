package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/internal/repository"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/middleware/requestid"
)

const associationResource = "students-of-class"

type associationRepository interface {
	Find(ctx context.Context, classID, studentID int64) (*models.StudentOfClass, error)
	ListByClass(ctx context.Context, classID int64) ([]models.StudentOfClass, error)
	Create(ctx context.Context, assoc *models.StudentOfClass) error
	Delete(ctx context.Context, classID, studentID int64) (*models.StudentOfClass, error)
	ReferenceExists(ctx context.Context, target *registry.Schema, id int64) (bool, error)
}

// AssociationService manages which students attend which class.
type AssociationService struct {
	repo      associationRepository
	classes   *registry.Schema
	students  *registry.Schema
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewAssociationService constructs an AssociationService.
func NewAssociationService(repo associationRepository, reg *registry.Registry, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AssociationService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssociationService{
		repo:      repo,
		classes:   reg.MustGet(registry.ResourceClasses),
		students:  reg.MustGet(registry.ResourceStudents),
		validator: validate,
		metrics:   metrics,
		logger:    logger.With(zap.String("resource", associationResource)),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Find returns the association between classID and studentID.
func (s *AssociationService) Find(ctx context.Context, classID, studentID int64) (*models.StudentOfClass, error) {
	if err := checkPair(classID, studentID); err != nil {
		return nil, err
	}
	assoc, err := s.repo.Find(ctx, classID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound("find", classID, studentID)
		}
		return nil, s.internal(ctx, "find", err)
	}
	s.metrics.RecordOperation(associationResource, "find", "ok")
	return assoc, nil
}

// ListByClass returns the students enrolled in classID.
func (s *AssociationService) ListByClass(ctx context.Context, classID int64) ([]models.StudentOfClass, error) {
	if classID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "ID must be a positive integer")
	}
	if err := s.ensureExists(ctx, s.classes, classID); err != nil {
		return nil, err
	}
	assocs, err := s.repo.ListByClass(ctx, classID)
	if err != nil {
		return nil, s.internal(ctx, "list", err)
	}
	s.metrics.RecordOperation(associationResource, "list", "ok")
	return assocs, nil
}

// Create enrolls req.StudentID into classID.
func (s *AssociationService) Create(ctx context.Context, classID int64, req dto.AddStudentToClassRequest) (*models.StudentOfClass, error) {
	if err := s.validator.StructCtx(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status,
			"invalid student of class payload: "+describeValidation(err))
	}
	if err := checkPair(classID, req.StudentID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, s.classes, classID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, s.students, req.StudentID); err != nil {
		return nil, err
	}

	if _, err := s.repo.Find(ctx, classID, req.StudentID); err == nil {
		return nil, s.conflict("create", classID, req.StudentID)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, s.internal(ctx, "create", err)
	}

	assoc := &models.StudentOfClass{
		ClassID:   classID,
		StudentID: req.StudentID,
		CreatedBy: req.CreatedBy,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, assoc); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, s.conflict("create", classID, req.StudentID)
		case errors.Is(err, repository.ErrForeignKey):
			s.metrics.RecordOperation(associationResource, "create", "not_found")
			return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status,
				fmt.Sprintf("class %d or student %d no longer exists", classID, req.StudentID))
		}
		return nil, s.internal(ctx, "create", err)
	}

	s.metrics.RecordOperation(associationResource, "create", "ok")
	return assoc, nil
}

// Delete removes the association and returns it.
func (s *AssociationService) Delete(ctx context.Context, classID, studentID int64) (*models.StudentOfClass, error) {
	if err := checkPair(classID, studentID); err != nil {
		return nil, err
	}
	assoc, err := s.repo.Delete(ctx, classID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound("delete", classID, studentID)
		}
		return nil, s.internal(ctx, "delete", err)
	}
	s.metrics.RecordOperation(associationResource, "delete", "ok")
	return assoc, nil
}

func (s *AssociationService) ensureExists(ctx context.Context, target *registry.Schema, id int64) error {
	exists, err := s.repo.ReferenceExists(ctx, target, id)
	if err != nil {
		return s.internal(ctx, "reference_check", err)
	}
	if !exists {
		s.metrics.RecordOperation(associationResource, "reference_check", "not_found")
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s %d not found", target.Label, id))
	}
	return nil
}

func checkPair(classID, studentID int64) error {
	if classID <= 0 || studentID <= 0 {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "ID must be a positive integer")
	}
	return nil
}

func (s *AssociationService) conflict(op string, classID, studentID int64) error {
	s.metrics.RecordOperation(associationResource, op, "conflict")
	return appErrors.Clone(appErrors.ErrConflict,
		fmt.Sprintf("student %d is already in class %d", studentID, classID))
}

func (s *AssociationService) notFound(op string, classID, studentID int64) error {
	s.metrics.RecordOperation(associationResource, op, "not_found")
	return appErrors.Clone(appErrors.ErrNotFound,
		fmt.Sprintf("student %d is not in class %d", studentID, classID))
}

func (s *AssociationService) internal(ctx context.Context, op string, err error) error {
	s.metrics.RecordOperation(associationResource, op, "error")
	s.logger.Error("storage operation failed",
		zap.String("operation", op),
		zap.String("request_id", requestid.FromContext(ctx)),
		zap.Error(err),
	)
	return appErrors.Internal(err, "failed to "+op+" student of class")
}
