package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
)

// employeeRefRepo stores at most one employee and knows which roles exist.
type employeeRefRepo struct {
	roles    map[int64]bool
	stored   *models.Employee
	lastVals map[string]interface{}
}

func (r *employeeRefRepo) FindAll(context.Context) ([]models.Employee, error) {
	if r.stored == nil {
		return []models.Employee{}, nil
	}
	return []models.Employee{*r.stored}, nil
}

func (r *employeeRefRepo) FindByID(_ context.Context, id int64) (*models.Employee, error) {
	if r.stored == nil || r.stored.ID != id {
		return nil, sql.ErrNoRows
	}
	cp := *r.stored
	return &cp, nil
}

func (r *employeeRefRepo) FindByUniqueKey(_ context.Context, values map[string]interface{}, excludeID int64) (*models.Employee, error) {
	if r.stored == nil || r.stored.ID == excludeID {
		return nil, sql.ErrNoRows
	}
	if values["employee_email"] == r.stored.Email || values["employee_cpf"] == r.stored.CPF || values["employee_phone"] == r.stored.Phone {
		cp := *r.stored
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (r *employeeRefRepo) ReferenceExists(_ context.Context, _ *registry.Schema, id int64) (bool, error) {
	return r.roles[id], nil
}

func (r *employeeRefRepo) Create(_ context.Context, values map[string]interface{}, now time.Time) (*models.Employee, error) {
	r.lastVals = values
	deleted := false
	r.stored = &models.Employee{
		ID:           1,
		Name:         values["employee_name"].(string),
		CPF:          values["employee_cpf"].(string),
		Email:        values["employee_email"].(string),
		PasswordHash: values["employee_password"].(string),
		Phone:        values["employee_phone"].(string),
		Addr:         values["employee_addr"].(string),
		Salary:       values["employee_salary"].(decimal.Decimal),
		RoleID:       values["employee_role"].(int64),
		Audit:        models.Audit{CreatedBy: values["created_by"].(int64), CreatedAt: now, IsDeleted: &deleted},
	}
	cp := *r.stored
	return &cp, nil
}

func (r *employeeRefRepo) Update(_ context.Context, id int64, values map[string]interface{}, now time.Time) (*models.Employee, error) {
	r.lastVals = values
	if v, ok := values["employee_password"]; ok {
		r.stored.PasswordHash = v.(string)
	}
	r.stored.UpdatedAt = &now
	cp := *r.stored
	return &cp, nil
}

func (r *employeeRefRepo) Remove(context.Context, int64) (*models.Employee, error) {
	return nil, sql.ErrNoRows
}

func validEmployeeRequest() *dto.CreateEmployeeRequest {
	salary := decimal.RequireFromString("3200.00")
	return &dto.CreateEmployeeRequest{
		EmployeeName:     "Ana Souza",
		EmployeeCPF:      "12345678901",
		EmployeeEmail:    "ana@school.test",
		EmployeePassword: "s3cret-pass",
		EmployeePhone:    "5511999990000",
		EmployeeAddr:     "Rua das Flores, 10",
		EmployeeSalary:   &salary,
		EmployeeRole:     2,
		CreatedBy:        1,
	}
}

func newEmployeeService(repo *employeeRefRepo) *EmployeeService {
	schema := registry.School().MustGet(registry.ResourceEmployees)
	engine := NewLifecycleService[models.Employee](schema, repo, nil, nil, nil, zap.NewNop())
	return NewEmployeeService(engine, bcrypt.MinCost)
}

func TestEmployeeCreateHashesPassword(t *testing.T) {
	repo := &employeeRefRepo{roles: map[int64]bool{2: true}}
	svc := newEmployeeService(repo)

	created, err := svc.Create(context.Background(), validEmployeeRequest())
	require.NoError(t, err)

	stored := repo.lastVals["employee_password"].(string)
	assert.NotEqual(t, "s3cret-pass", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("s3cret-pass")))

	body, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "employee_password")
	assert.NotContains(t, string(body), stored)
}

func TestEmployeeUpdateRehashesOnlyWhenSupplied(t *testing.T) {
	repo := &employeeRefRepo{roles: map[int64]bool{2: true}}
	svc := newEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, validEmployeeRequest())
	require.NoError(t, err)
	original := repo.stored.PasswordHash

	_, err = svc.Update(ctx, 1, &dto.UpdateEmployeeRequest{EmployeeAddr: strPtr("Rua Nova, 1")})
	require.NoError(t, err)
	assert.NotContains(t, repo.lastVals, "employee_password")
	assert.Equal(t, original, repo.stored.PasswordHash)

	_, err = svc.Update(ctx, 1, &dto.UpdateEmployeeRequest{EmployeePassword: strPtr("another-pass")})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.stored.PasswordHash), []byte("another-pass")))
}

func TestEmployeeLogin(t *testing.T) {
	repo := &employeeRefRepo{roles: map[int64]bool{2: true}}
	svc := newEmployeeService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, validEmployeeRequest())
	require.NoError(t, err)

	employee, err := svc.Login(ctx, dto.LoginRequest{EmployeeEmail: "ana@school.test", EmployeePassword: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), employee.ID)

	_, err = svc.Login(ctx, dto.LoginRequest{EmployeeEmail: "ana@school.test", EmployeePassword: "wrong-pass"})
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))

	_, err = svc.Login(ctx, dto.LoginRequest{EmployeeEmail: "nobody@school.test", EmployeePassword: "s3cret-pass"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "employee not found", appErrors.FromError(err).Message)

	_, err = svc.Login(ctx, dto.LoginRequest{EmployeeEmail: "not-an-email"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
}
