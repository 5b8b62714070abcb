package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
)

const studentOfClassColumns = "class_id, student_id, created_by, created_at"

// AssociationRepository persists the students_of_class join table.
type AssociationRepository struct {
	db *sqlx.DB
}

// NewAssociationRepository constructs an AssociationRepository.
func NewAssociationRepository(db *sqlx.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

// Find returns the association for the pair or sql.ErrNoRows.
func (r *AssociationRepository) Find(ctx context.Context, classID, studentID int64) (*models.StudentOfClass, error) {
	query := r.db.Rebind("SELECT " + studentOfClassColumns + " FROM students_of_class WHERE class_id = ? AND student_id = ?")
	var assoc models.StudentOfClass
	if err := r.db.GetContext(ctx, &assoc, query, classID, studentID); err != nil {
		return nil, err
	}
	return &assoc, nil
}

// ListByClass returns every association of a class ordered by student.
func (r *AssociationRepository) ListByClass(ctx context.Context, classID int64) ([]models.StudentOfClass, error) {
	query := r.db.Rebind("SELECT " + studentOfClassColumns + " FROM students_of_class WHERE class_id = ? ORDER BY student_id ASC")
	assocs := make([]models.StudentOfClass, 0)
	if err := r.db.SelectContext(ctx, &assocs, query, classID); err != nil {
		return nil, fmt.Errorf("list students of class: %w", err)
	}
	return assocs, nil
}

// Create inserts the association. An existing pair yields ErrDuplicate.
func (r *AssociationRepository) Create(ctx context.Context, assoc *models.StudentOfClass) error {
	query := r.db.Rebind(`INSERT INTO students_of_class (class_id, student_id, created_by, created_at)
        VALUES (?, ?, ?, ?) ON CONFLICT DO NOTHING RETURNING class_id`)
	var classID int64
	if err := r.db.GetContext(ctx, &classID, query, assoc.ClassID, assoc.StudentID, assoc.CreatedBy, assoc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("create student of class: %w", ErrDuplicate)
		}
		return fmt.Errorf("create student of class: %w", translate(err))
	}
	return nil
}

// Delete removes the association and returns the removed row, or sql.ErrNoRows.
func (r *AssociationRepository) Delete(ctx context.Context, classID, studentID int64) (*models.StudentOfClass, error) {
	query := r.db.Rebind("DELETE FROM students_of_class WHERE class_id = ? AND student_id = ? RETURNING " + studentOfClassColumns)
	var assoc models.StudentOfClass
	if err := r.db.GetContext(ctx, &assoc, query, classID, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("delete student of class: %w", err)
	}
	return &assoc, nil
}

// ReferenceExists reports whether a record of target with id exists.
func (r *AssociationRepository) ReferenceExists(ctx context.Context, target *registry.Schema, id int64) (bool, error) {
	return referenceExists(ctx, r.db, target, id)
}
