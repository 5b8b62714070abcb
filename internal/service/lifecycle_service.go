package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/internal/repository"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/middleware/requestid"
)

type lifecycleRepository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	FindByUniqueKey(ctx context.Context, values map[string]interface{}, excludeID int64) (*T, error)
	ReferenceExists(ctx context.Context, target *registry.Schema, id int64) (bool, error)
	Create(ctx context.Context, values map[string]interface{}, now time.Time) (*T, error)
	Update(ctx context.Context, id int64, values map[string]interface{}, now time.Time) (*T, error)
	Remove(ctx context.Context, id int64) (*T, error)
}

// ValuesHook rewrites extracted column values before they are persisted.
type ValuesHook func(ctx context.Context, values map[string]interface{}, mode registry.Mode) error

// LifecycleService implements find, create, update, soft-delete, restore and
// remove for any entity kind described by a registry schema.
type LifecycleService[T any] struct {
	schema    *registry.Schema
	repo      lifecycleRepository[T]
	validator *validator.Validate
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	hooks     []ValuesHook
	now       func() time.Time
}

// NewLifecycleService constructs the engine for schema.
func NewLifecycleService[T any](schema *registry.Schema, repo lifecycleRepository[T], validate *validator.Validate, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *LifecycleService[T] {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleService[T]{
		schema:    schema,
		repo:      repo,
		validator: validate,
		cache:     cache,
		metrics:   metrics,
		logger:    logger.With(zap.String("resource", schema.Resource)),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithValuesHook registers hook to run on every create and update payload.
func (s *LifecycleService[T]) WithValuesHook(hook ValuesHook) *LifecycleService[T] {
	s.hooks = append(s.hooks, hook)
	return s
}

// Schema returns the schema the service manages.
func (s *LifecycleService[T]) Schema() *registry.Schema {
	return s.schema
}

// FindAll returns every record ordered by id.
func (s *LifecycleService[T]) FindAll(ctx context.Context) ([]T, error) {
	key := ListKey(s.schema.Resource)
	var cached []T
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	start := time.Now()
	records, err := s.repo.FindAll(ctx)
	s.metrics.ObserveQuery(s.schema.Resource, "find_all", time.Since(start))
	if err != nil {
		return nil, s.internal(ctx, "find_all", err, fmt.Sprintf("failed to list %s", s.schema.Plural))
	}

	_ = s.cache.Set(ctx, key, records, 0)
	s.metrics.RecordOperation(s.schema.Resource, "find_all", "ok")
	return records, nil
}

// FindByID returns the record with id.
func (s *LifecycleService[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}

	key := RecordKey(s.schema.Resource, id)
	var cached T
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	start := time.Now()
	record, err := s.repo.FindByID(ctx, id)
	s.metrics.ObserveQuery(s.schema.Resource, "find_by_id", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound("find_by_id", id)
		}
		return nil, s.internal(ctx, "find_by_id", err, fmt.Sprintf("failed to load %s", s.schema.Label))
	}

	_ = s.cache.Set(ctx, key, record, 0)
	s.metrics.RecordOperation(s.schema.Resource, "find_by_id", "ok")
	return record, nil
}

// FindByUniqueKey returns the first record matching any supplied unique
// value. Columns that are not unique keys are ignored.
func (s *LifecycleService[T]) FindByUniqueKey(ctx context.Context, values map[string]interface{}) (*T, error) {
	record, err := s.repo.FindByUniqueKey(ctx, values, 0)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.schema.Label))
		}
		return nil, s.internal(ctx, "find_by_unique_key", err, fmt.Sprintf("failed to load %s", s.schema.Label))
	}
	return record, nil
}

// Create validates req, enforces uniqueness and references, and stores a new record.
func (s *LifecycleService[T]) Create(ctx context.Context, req interface{}) (*T, error) {
	values, err := s.payload(ctx, req, registry.ModeCreate)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, values, 0); err != nil {
		return nil, err
	}
	if err := s.ensureReferences(ctx, values); err != nil {
		return nil, err
	}

	start := time.Now()
	record, err := s.repo.Create(ctx, values, s.now())
	s.metrics.ObserveQuery(s.schema.Resource, "create", time.Since(start))
	if err != nil {
		return nil, s.writeError(ctx, "create", err, 0)
	}

	s.afterWrite(ctx, "create")
	return record, nil
}

// Update applies the non-nil fields of req to the record with id.
func (s *LifecycleService[T]) Update(ctx context.Context, id int64, req interface{}) (*T, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}
	values, err := s.payload(ctx, req, registry.ModeUpdate)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, "update", id, values)
}

// SoftDelete marks the record deleted without touching domain fields.
func (s *LifecycleService[T]) SoftDelete(ctx context.Context, id int64) (*T, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}
	return s.update(ctx, "soft_delete", id, map[string]interface{}{registry.ColumnIsDeleted: true})
}

// Restore clears the soft-delete mark.
func (s *LifecycleService[T]) Restore(ctx context.Context, id int64) (*T, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}
	return s.update(ctx, "restore", id, map[string]interface{}{registry.ColumnIsDeleted: false})
}

// Remove physically deletes the record and returns its last state.
func (s *LifecycleService[T]) Remove(ctx context.Context, id int64) (*T, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}

	start := time.Now()
	record, err := s.repo.Remove(ctx, id)
	s.metrics.ObserveQuery(s.schema.Resource, "remove", time.Since(start))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, s.notFound("remove", id)
		case errors.Is(err, repository.ErrForeignKey):
			s.metrics.RecordOperation(s.schema.Resource, "remove", "conflict")
			return nil, appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status,
				fmt.Sprintf("%s %d is still referenced", s.schema.Label, id))
		}
		return nil, s.internal(ctx, "remove", err, fmt.Sprintf("failed to remove %s", s.schema.Label))
	}

	s.afterWrite(ctx, "remove")
	return record, nil
}

func (s *LifecycleService[T]) update(ctx context.Context, op string, id int64, values map[string]interface{}) (*T, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound(op, id)
		}
		return nil, s.internal(ctx, op, err, fmt.Sprintf("failed to load %s", s.schema.Label))
	}
	if err := s.ensureUnique(ctx, values, id); err != nil {
		return nil, err
	}
	if err := s.ensureReferences(ctx, values); err != nil {
		return nil, err
	}

	start := time.Now()
	record, err := s.repo.Update(ctx, id, values, s.now())
	s.metrics.ObserveQuery(s.schema.Resource, op, time.Since(start))
	if err != nil {
		return nil, s.writeError(ctx, op, err, id)
	}

	s.afterWrite(ctx, op)
	return record, nil
}

func (s *LifecycleService[T]) payload(ctx context.Context, req interface{}, mode registry.Mode) (map[string]interface{}, error) {
	if req == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "payload is required")
	}
	if err := s.validator.StructCtx(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status,
			fmt.Sprintf("invalid %s payload: %s", s.schema.Label, describeValidation(err)))
	}
	values, err := registry.Values(s.schema, req, mode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status,
			fmt.Sprintf("invalid %s payload: %v", s.schema.Label, err))
	}
	for _, hook := range s.hooks {
		if err := hook(ctx, values, mode); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (s *LifecycleService[T]) ensureUnique(ctx context.Context, values map[string]interface{}, excludeID int64) error {
	if _, err := s.repo.FindByUniqueKey(ctx, values, excludeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return s.internal(ctx, "find_by_unique_key", err, fmt.Sprintf("failed to check %s uniqueness", s.schema.Label))
	}
	s.metrics.RecordOperation(s.schema.Resource, "unique_check", "conflict")
	return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("%s already exists", s.schema.Label))
}

func (s *LifecycleService[T]) ensureReferences(ctx context.Context, values map[string]interface{}) error {
	for _, fk := range s.schema.ForeignKeys {
		raw, ok := values[fk.Column]
		if !ok || raw == nil {
			continue
		}
		id, ok := raw.(int64)
		if !ok {
			continue
		}
		exists, err := s.repo.ReferenceExists(ctx, fk.Target(), id)
		if err != nil {
			return s.internal(ctx, "reference_check", err, fmt.Sprintf("failed to check %s", fk.Target().Label))
		}
		if !exists {
			return appErrors.Clone(appErrors.ErrInvalidArgument, fmt.Sprintf("%s %d does not exist", fk.Target().Label, id))
		}
	}
	return nil
}

func (s *LifecycleService[T]) writeError(ctx context.Context, op string, err error, id int64) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return s.notFound(op, id)
	case errors.Is(err, repository.ErrDuplicate):
		s.metrics.RecordOperation(s.schema.Resource, op, "conflict")
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, fmt.Sprintf("%s already exists", s.schema.Label))
	case errors.Is(err, repository.ErrForeignKey):
		s.metrics.RecordOperation(s.schema.Resource, op, "invalid")
		return appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status,
			fmt.Sprintf("%s references a record that does not exist", s.schema.Label))
	}
	return s.internal(ctx, op, err, fmt.Sprintf("failed to %s %s", verb(op), s.schema.Label))
}

func (s *LifecycleService[T]) afterWrite(ctx context.Context, op string) {
	s.cache.InvalidateResources(ctx, append([]string{s.schema.Resource}, s.schema.Dependents()...)...)
	s.metrics.RecordOperation(s.schema.Resource, op, "ok")
}

func (s *LifecycleService[T]) checkID(id int64) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "ID must be a positive integer")
	}
	return nil
}

func (s *LifecycleService[T]) notFound(op string, id int64) error {
	s.metrics.RecordOperation(s.schema.Resource, op, "not_found")
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s %d not found", s.schema.Label, id))
}

func (s *LifecycleService[T]) internal(ctx context.Context, op string, err error, message string) error {
	s.metrics.RecordOperation(s.schema.Resource, op, "error")
	s.logger.Error("storage operation failed",
		zap.String("operation", op),
		zap.String("request_id", requestid.FromContext(ctx)),
		zap.Error(err),
	)
	return appErrors.Internal(err, message)
}

func verb(op string) string {
	switch op {
	case "soft_delete":
		return "soft-delete"
	default:
		return op
	}
}

// describeValidation renders validator errors as "field: rule" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		part := fe.Field() + " " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

// Records is FindAll for consumers that do not know the record type.
func (s *LifecycleService[T]) Records(ctx context.Context) (interface{}, error) {
	return s.FindAll(ctx)
}
