package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/internal/repository"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
)

type pairKey struct{ class, student int64 }

type memoryAssocRepo struct {
	rows      map[pairKey]models.StudentOfClass
	classes   map[int64]bool
	students  map[int64]bool
	createErr error
}

func newMemoryAssocRepo() *memoryAssocRepo {
	return &memoryAssocRepo{
		rows:     map[pairKey]models.StudentOfClass{},
		classes:  map[int64]bool{1: true},
		students: map[int64]bool{10: true, 11: true},
	}
}

func (m *memoryAssocRepo) Find(_ context.Context, classID, studentID int64) (*models.StudentOfClass, error) {
	a, ok := m.rows[pairKey{classID, studentID}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &a, nil
}

func (m *memoryAssocRepo) ListByClass(_ context.Context, classID int64) ([]models.StudentOfClass, error) {
	out := make([]models.StudentOfClass, 0)
	for k, a := range m.rows {
		if k.class == classID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryAssocRepo) Create(_ context.Context, assoc *models.StudentOfClass) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.rows[pairKey{assoc.ClassID, assoc.StudentID}] = *assoc
	return nil
}

func (m *memoryAssocRepo) Delete(_ context.Context, classID, studentID int64) (*models.StudentOfClass, error) {
	a, ok := m.rows[pairKey{classID, studentID}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	delete(m.rows, pairKey{classID, studentID})
	return &a, nil
}

func (m *memoryAssocRepo) ReferenceExists(_ context.Context, target *registry.Schema, id int64) (bool, error) {
	if target.Resource == registry.ResourceClasses {
		return m.classes[id], nil
	}
	return m.students[id], nil
}

func newAssociationService(repo *memoryAssocRepo) *AssociationService {
	return NewAssociationService(repo, registry.School(), nil, NewMetricsService(), zap.NewNop())
}

func TestAssociationCreateFindDelete(t *testing.T) {
	repo := newMemoryAssocRepo()
	svc := newAssociationService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, dto.AddStudentToClassRequest{StudentID: 10, CreatedBy: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ClassID)
	assert.Equal(t, int64(10), created.StudentID)
	assert.Equal(t, int64(3), created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := svc.Find(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, created.StudentID, found.StudentID)

	list, err := svc.ListByClass(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	removed, err := svc.Delete(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), removed.StudentID)

	_, err = svc.Find(ctx, 1, 10)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestAssociationCreateConflicts(t *testing.T) {
	repo := newMemoryAssocRepo()
	svc := newAssociationService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, dto.AddStudentToClassRequest{StudentID: 10, CreatedBy: 3})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 1, dto.AddStudentToClassRequest{StudentID: 10, CreatedBy: 3})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, "student 10 is already in class 1", appErrors.FromError(err).Message)

	repo.createErr = repository.ErrDuplicate
	_, err = svc.Create(ctx, 1, dto.AddStudentToClassRequest{StudentID: 11, CreatedBy: 3})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
}

func TestAssociationRequiresExistingParties(t *testing.T) {
	svc := newAssociationService(newMemoryAssocRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, 2, dto.AddStudentToClassRequest{StudentID: 10, CreatedBy: 3})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "class 2 not found", appErrors.FromError(err).Message)

	_, err = svc.Create(ctx, 1, dto.AddStudentToClassRequest{StudentID: 99, CreatedBy: 3})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "student 99 not found", appErrors.FromError(err).Message)

	_, err = svc.ListByClass(ctx, 2)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestAssociationRejectsInvalidInput(t *testing.T) {
	svc := newAssociationService(newMemoryAssocRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, dto.AddStudentToClassRequest{StudentID: 10})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	_, err = svc.Delete(ctx, 0, 10)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	_, err = svc.Delete(ctx, 1, 10)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "student 10 is not in class 1", appErrors.FromError(err).Message)
}
