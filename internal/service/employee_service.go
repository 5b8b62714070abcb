package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
)

const passwordColumn = "employee_password"

// EmployeeService extends the employee lifecycle with password hashing and
// the credential check.
type EmployeeService struct {
	*LifecycleService[models.Employee]
	cost int
}

// NewEmployeeService wraps engine so every stored password is a bcrypt hash.
func NewEmployeeService(engine *LifecycleService[models.Employee], cost int) *EmployeeService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	svc := &EmployeeService{LifecycleService: engine, cost: cost}
	engine.WithValuesHook(svc.hashPassword)
	return svc
}

// Login returns the employee whose email and password match.
func (s *EmployeeService) Login(ctx context.Context, req dto.LoginRequest) (*models.Employee, error) {
	if err := s.validator.StructCtx(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidArgument.Code, appErrors.ErrInvalidArgument.Status,
			"invalid login payload: "+describeValidation(err))
	}

	employee, err := s.FindByUniqueKey(ctx, map[string]interface{}{"employee_email": req.EmployeeEmail})
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.EmployeePassword)); err != nil {
		s.metrics.RecordOperation(s.schema.Resource, "login", "forbidden")
		s.logger.Info("employee login rejected", zap.Int64("employee_id", employee.ID))
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid credentials")
	}

	s.metrics.RecordOperation(s.schema.Resource, "login", "ok")
	return employee, nil
}

func (s *EmployeeService) hashPassword(_ context.Context, values map[string]interface{}, _ registry.Mode) error {
	raw, ok := values[passwordColumn]
	if !ok {
		return nil
	}
	plain, ok := raw.(string)
	if !ok {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "employee_password must be a string")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return appErrors.Clone(appErrors.ErrInvalidArgument, "employee_password is too long")
		}
		return appErrors.Internal(err, fmt.Sprintf("failed to hash %s", passwordColumn))
	}
	values[passwordColumn] = string(hash)
	return nil
}
