package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/internal/repository"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
)

// memoryRoleRepo is an in-memory lifecycleRepository for roles.
type memoryRoleRepo struct {
	rows       map[int64]*models.Role
	nextID     int64
	findCalls  int
	createErr  error
	removeErr  error
	references map[int64]bool
}

func newMemoryRoleRepo() *memoryRoleRepo {
	return &memoryRoleRepo{rows: map[int64]*models.Role{}, nextID: 1}
}

func (m *memoryRoleRepo) FindAll(context.Context) ([]models.Role, error) {
	m.findCalls++
	out := make([]models.Role, 0, len(m.rows))
	for id := int64(1); id < m.nextID; id++ {
		if r, ok := m.rows[id]; ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryRoleRepo) FindByID(_ context.Context, id int64) (*models.Role, error) {
	m.findCalls++
	r, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *r
	return &cp, nil
}

func (m *memoryRoleRepo) FindByUniqueKey(_ context.Context, values map[string]interface{}, excludeID int64) (*models.Role, error) {
	title, ok := values["role_title"]
	if !ok {
		return nil, sql.ErrNoRows
	}
	for id, r := range m.rows {
		if id != excludeID && r.Title == title {
			cp := *r
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memoryRoleRepo) ReferenceExists(_ context.Context, _ *registry.Schema, id int64) (bool, error) {
	return m.references[id], nil
}

func (m *memoryRoleRepo) Create(_ context.Context, values map[string]interface{}, now time.Time) (*models.Role, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	deleted := false
	r := &models.Role{ID: m.nextID, Audit: models.Audit{CreatedAt: now, IsDeleted: &deleted}}
	m.apply(r, values, now)
	r.CreatedBy = values["created_by"].(int64)
	m.rows[r.ID] = r
	m.nextID++
	cp := *r
	return &cp, nil
}

func (m *memoryRoleRepo) Update(_ context.Context, id int64, values map[string]interface{}, now time.Time) (*models.Role, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	m.apply(r, values, now)
	r.UpdatedAt = &now
	cp := *r
	return &cp, nil
}

func (m *memoryRoleRepo) Remove(_ context.Context, id int64) (*models.Role, error) {
	if m.removeErr != nil {
		return nil, m.removeErr
	}
	r, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	delete(m.rows, id)
	return r, nil
}

func (m *memoryRoleRepo) apply(r *models.Role, values map[string]interface{}, now time.Time) {
	if v, ok := values["role_title"]; ok {
		r.Title = v.(string)
	}
	if v, ok := values["role_desc"]; ok {
		desc := v.(string)
		r.Desc = &desc
	}
	if v, ok := values["is_deleted"]; ok {
		deleted := v.(bool)
		r.IsDeleted = &deleted
		if deleted {
			r.DeletedAt = &now
		} else {
			r.DeletedAt = nil
		}
	}
}

func newRoleService(t *testing.T, repo *memoryRoleRepo, cache *CacheService) *LifecycleService[models.Role] {
	t.Helper()
	schema := registry.School().MustGet(registry.ResourceRoles)
	svc := NewLifecycleService[models.Role](schema, repo, nil, cache, NewMetricsService(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestLifecycleCreateAndFind(t *testing.T) {
	repo := newMemoryRoleRepo()
	svc := newRoleService(t, repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(1), created.CreatedBy)
	assert.False(t, created.Deleted())
	assert.Nil(t, created.UpdatedAt)
	assert.Nil(t, created.DeletedAt)

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLifecycleCreateRejectsDuplicates(t *testing.T) {
	repo := newMemoryRoleRepo()
	svc := newRoleService(t, repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, "role already exists", appErrors.FromError(err).Message)

	repo.createErr = fmt.Errorf("create role: %w", repository.ErrDuplicate)
	_, err = svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Director", CreatedBy: 1})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
}

func TestLifecycleCreateValidatesPayload(t *testing.T) {
	svc := newRoleService(t, newMemoryRoleRepo(), nil)

	_, err := svc.Create(context.Background(), &dto.CreateRoleRequest{RoleTitle: "Teacher"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "created_by")

	_, err = svc.Create(context.Background(), nil)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
}

func TestLifecycleCreateChecksForeignKeys(t *testing.T) {
	schema := registry.School().MustGet(registry.ResourceEmployees)
	repo := &employeeRefRepo{}
	svc := NewLifecycleService[models.Employee](schema, repo, nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), validEmployeeRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
	assert.Equal(t, "role 2 does not exist", appErrors.FromError(err).Message)
}

func TestLifecycleUpdateChangesOnlySuppliedFields(t *testing.T) {
	repo := newMemoryRoleRepo()
	svc := newRoleService(t, repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateRoleRequest{RoleDesc: strPtr("teaches")})
	require.NoError(t, err)
	assert.Equal(t, "Teacher", updated.Title)
	require.NotNil(t, updated.Desc)
	assert.Equal(t, "teaches", *updated.Desc)
	require.NotNil(t, updated.UpdatedAt)

	// Keeping its own title is not a conflict.
	_, err = svc.Update(ctx, created.ID, &dto.UpdateRoleRequest{RoleTitle: strPtr("Teacher")})
	require.NoError(t, err)
}

func TestLifecycleUpdateErrors(t *testing.T) {
	repo := newMemoryRoleRepo()
	svc := newRoleService(t, repo, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, 0, &dto.UpdateRoleRequest{})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	_, err = svc.Update(ctx, 99, &dto.UpdateRoleRequest{RoleDesc: strPtr("x")})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "role 99 not found", appErrors.FromError(err).Message)

	_, err = svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Director", CreatedBy: 1})
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, &dto.UpdateRoleRequest{RoleTitle: strPtr("Teacher")})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
}

func TestLifecycleSoftDeleteAndRestore(t *testing.T) {
	repo := newMemoryRoleRepo()
	svc := newRoleService(t, repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", RoleDesc: strPtr("x"), CreatedBy: 1})
	require.NoError(t, err)

	deleted, err := svc.SoftDelete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted())
	require.NotNil(t, deleted.DeletedAt)
	assert.Equal(t, "Teacher", deleted.Title)
	assert.Equal(t, "x", *deleted.Desc)

	restored, err := svc.Restore(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted())
	assert.Nil(t, restored.DeletedAt)

	viaUpdate, err := svc.Update(ctx, created.ID, &dto.UpdateRoleRequest{IsDeleted: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, viaUpdate.Deleted())
	assert.NotNil(t, viaUpdate.DeletedAt)

	_, err = svc.SoftDelete(ctx, 42)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestLifecycleRemove(t *testing.T) {
	repo := newMemoryRoleRepo()
	svc := newRoleService(t, repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	require.NoError(t, err)

	removed, err := svc.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = svc.FindByID(ctx, created.ID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.Remove(ctx, created.ID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Director", CreatedBy: 1})
	require.NoError(t, err)
	repo.removeErr = fmt.Errorf("remove role: %w", repository.ErrForeignKey)
	_, err = svc.Remove(ctx, 2)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, "role 2 is still referenced", appErrors.FromError(err).Message)
}

func TestLifecycleStorageFailureIsInternal(t *testing.T) {
	repo := newMemoryRoleRepo()
	repo.createErr = errors.New("connection reset")
	svc := newRoleService(t, repo, nil)

	_, err := svc.Create(context.Background(), &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "failed to create role", appErr.Message)
	assert.NotContains(t, appErr.Message, "connection reset")

	repo.createErr = context.DeadlineExceeded
	_, err = svc.Create(context.Background(), &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	assert.True(t, errors.Is(err, appErrors.ErrTimeout))
}

func TestLifecycleCachesReadsAndInvalidatesOnWrite(t *testing.T) {
	repo := newMemoryRoleRepo()
	cacheRepo := newMemoryCacheRepo()
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := newRoleService(t, repo, cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateRoleRequest{RoleTitle: "Teacher", CreatedBy: 1})
	require.NoError(t, err)

	_, err = svc.FindAll(ctx)
	require.NoError(t, err)
	calls := repo.findCalls
	_, err = svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, calls, repo.findCalls)

	_, err = svc.Update(ctx, created.ID, &dto.UpdateRoleRequest{RoleDesc: strPtr("x")})
	require.NoError(t, err)
	assert.NotContains(t, cacheRepo.entries, ListKey(registry.ResourceRoles))

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "x", *all[0].Desc)
}
