package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/pkg/database"
)

var (
	// ErrDuplicate reports a write rejected by a uniqueness rule.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey reports a write referencing a record that does not exist,
	// or a removal of a record still referenced elsewhere.
	ErrForeignKey = errors.New("foreign key violation")
)

const baseAlias = "t"

// LifecycleRepository persists one entity kind described by a registry schema.
// Queries are written with ? placeholders and rebound for the driver.
type LifecycleRepository[T any] struct {
	db     *sqlx.DB
	schema *registry.Schema
	sel    string
}

// NewLifecycleRepository constructs a LifecycleRepository for schema.
func NewLifecycleRepository[T any](db *sqlx.DB, schema *registry.Schema) *LifecycleRepository[T] {
	return &LifecycleRepository[T]{db: db, schema: schema, sel: selectFrom(schema)}
}

// Schema returns the schema backing the repository.
func (r *LifecycleRepository[T]) Schema() *registry.Schema {
	return r.schema
}

// FindAll returns every stored record, soft-deleted ones included, ordered by id.
func (r *LifecycleRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("%s ORDER BY %s.%s ASC", r.sel, baseAlias, r.schema.IDColumn)
	records := make([]T, 0)
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query)); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}
	return records, nil
}

// FindByID returns the record with id or sql.ErrNoRows.
func (r *LifecycleRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *LifecycleRepository[T]) findByID(ctx context.Context, q sqlx.ExtContext, id int64) (*T, error) {
	query := fmt.Sprintf("%s WHERE %s.%s = ?", r.sel, baseAlias, r.schema.IDColumn)
	var record T
	if err := sqlx.GetContext(ctx, q, &record, q.Rebind(query), id); err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByUniqueKey returns the first record whose unique columns match ANY of
// the supplied values. excludeID > 0 leaves that record out. Returns
// sql.ErrNoRows when nothing matches or no unique value was supplied.
func (r *LifecycleRepository[T]) FindByUniqueKey(ctx context.Context, values map[string]interface{}, excludeID int64) (*T, error) {
	conditions := make([]string, 0, len(r.schema.UniqueKeys))
	args := make([]interface{}, 0, len(r.schema.UniqueKeys)+1)
	for _, column := range r.schema.UniqueKeys {
		v, ok := values[column]
		if !ok || v == nil {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s.%s = ?", baseAlias, column))
		args = append(args, v)
	}
	if len(conditions) == 0 {
		return nil, sql.ErrNoRows
	}

	where := "(" + strings.Join(conditions, " OR ") + ")"
	if excludeID > 0 {
		where += fmt.Sprintf(" AND %s.%s <> ?", baseAlias, r.schema.IDColumn)
		args = append(args, excludeID)
	}
	query := fmt.Sprintf("%s WHERE %s ORDER BY %s.%s ASC LIMIT 1", r.sel, where, baseAlias, r.schema.IDColumn)

	var record T
	if err := r.db.GetContext(ctx, &record, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return &record, nil
}

// ReferenceExists reports whether a record of target with id exists.
func (r *LifecycleRepository[T]) ReferenceExists(ctx context.Context, target *registry.Schema, id int64) (bool, error) {
	return referenceExists(ctx, r.db, target, id)
}

// Create inserts values as a new record and returns it as stored. The insert
// is skipped on a uniqueness collision, reported as ErrDuplicate.
func (r *LifecycleRepository[T]) Create(ctx context.Context, values map[string]interface{}, now time.Time) (*T, error) {
	columns := make([]string, 0, len(values)+2)
	args := make([]interface{}, 0, len(values)+2)
	for _, column := range r.schema.Writable(registry.ModeCreate) {
		if v, ok := values[column]; ok {
			columns = append(columns, column)
			args = append(args, v)
		}
	}
	columns = append(columns, registry.ColumnCreatedAt, registry.ColumnIsDeleted)
	args = append(args, now, false)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.schema.Table, strings.Join(columns, ", "), placeholders)
	if len(r.schema.UniqueKeys) > 0 {
		query += " ON CONFLICT DO NOTHING"
	}
	query += " RETURNING " + r.schema.IDColumn

	var record *T
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var id int64
		if err := tx.GetContext(ctx, &id, tx.Rebind(query), args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrDuplicate
			}
			return err
		}
		var err error
		record, err = r.findByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", r.schema.Label, translate(err))
	}
	return record, nil
}

// Update applies values to the record with id and returns it as stored.
// updated_at is always refreshed; is_deleted drives deleted_at. Returns
// sql.ErrNoRows when the record does not exist.
func (r *LifecycleRepository[T]) Update(ctx context.Context, id int64, values map[string]interface{}, now time.Time) (*T, error) {
	sets := make([]string, 0, len(values)+2)
	args := make([]interface{}, 0, len(values)+3)
	for _, column := range r.schema.Writable(registry.ModeUpdate) {
		v, ok := values[column]
		if !ok {
			continue
		}
		sets = append(sets, column+" = ?")
		args = append(args, v)
		if column == registry.ColumnIsDeleted {
			sets = append(sets, registry.ColumnDeletedAt+" = ?")
			if deleted, _ := v.(bool); deleted {
				args = append(args, now)
			} else {
				args = append(args, nil)
			}
		}
	}
	sets = append(sets, registry.ColumnUpdatedAt+" = ?")
	args = append(args, now, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING %s",
		r.schema.Table, strings.Join(sets, ", "), r.schema.IDColumn, r.schema.IDColumn)

	var record *T
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var updated int64
		if err := tx.GetContext(ctx, &updated, tx.Rebind(query), args...); err != nil {
			return err
		}
		var err error
		record, err = r.findByID(ctx, tx, updated)
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("update %s: %w", r.schema.Label, translate(err))
	}
	return record, nil
}

// Remove deletes the record with id and returns its last stored state.
func (r *LifecycleRepository[T]) Remove(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", r.schema.Table, r.schema.IDColumn)

	var snapshot *T
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		snapshot, err = r.findByID(ctx, tx, id)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, tx.Rebind(query), id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("remove %s: %w", r.schema.Label, translate(err))
	}
	return snapshot, nil
}

func (r *LifecycleRepository[T]) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return withTx(ctx, r.db, fn)
}

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func referenceExists(ctx context.Context, db *sqlx.DB, target *registry.Schema, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ? LIMIT 1", target.Table, target.IDColumn)
	var exists int
	if err := db.GetContext(ctx, &exists, db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check %s reference: %w", target.Label, err)
	}
	return true, nil
}

// translate maps driver constraint failures onto the repository sentinels.
func translate(err error) error {
	switch database.Classify(err) {
	case database.ViolationUnique:
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case database.ViolationForeignKey:
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	default:
		return err
	}
}

// selectFrom renders the SELECT ... FROM ... LEFT JOIN clause for schema.
func selectFrom(schema *registry.Schema) string {
	columns := make([]string, 0, len(schema.RecordColumns()))
	for _, c := range schema.RecordColumns() {
		columns = append(columns, baseAlias+"."+c)
	}

	var joins strings.Builder
	for i, j := range schema.Joins {
		alias := fmt.Sprintf("j%d", i)
		target := j.Target()
		for _, c := range j.Columns {
			columns = append(columns, fmt.Sprintf(`%s.%s AS "%s.%s"`, alias, c, j.Field, c))
		}
		fmt.Fprintf(&joins, " LEFT JOIN %s %s ON %s.%s = %s.%s",
			target.Table, alias, alias, target.IDColumn, baseAlias, j.Column)
	}

	return fmt.Sprintf("SELECT %s FROM %s %s%s", strings.Join(columns, ", "), schema.Table, baseAlias, joins.String())
}
