// Package registry describes every school entity the lifecycle engine manages:
// its table, writable columns, unique keys, foreign keys and joined summaries.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx/reflectx"
)

// Audit columns shared by every entity table.
const (
	ColumnCreatedBy = "created_by"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
	ColumnDeletedAt = "deleted_at"
	ColumnIsDeleted = "is_deleted"
)

// Mode selects which columns a payload may carry.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

var (
	ErrUnknownColumn = errors.New("column is not writable")
	ErrInvalidDTO    = errors.New("payload must be a struct")
)

// Column is a domain column of an entity table.
type Column struct {
	Name string
	// Immutable columns are accepted on create and rejected on update.
	Immutable bool
}

// ForeignKey declares that Column holds the id of a record of another resource.
type ForeignKey struct {
	Column     string
	References string

	target *Schema
}

// Target returns the referenced schema once the registry resolved it.
func (fk ForeignKey) Target() *Schema { return fk.target }

// Join declares a summary of a referenced record loaded with every read.
// Columns are aliased as "Field.column" so sqlx scans them into a nested struct.
type Join struct {
	Field    string
	Resource string
	Column   string
	Columns  []string

	target *Schema
}

// Target returns the joined schema once the registry resolved it.
func (j Join) Target() *Schema { return j.target }

// Schema is the metadata the lifecycle engine needs for one entity kind.
type Schema struct {
	Resource    string
	Table       string
	IDColumn    string
	Label       string
	Plural      string
	Columns     []Column
	UniqueKeys  []string
	ForeignKeys []ForeignKey
	Joins       []Join
	// Hidden columns are stored and selected but never exported.
	Hidden []string

	dependents []string
}

// Dependents lists the resources whose reads embed this one through a join.
func (s *Schema) Dependents() []string {
	out := make([]string, len(s.dependents))
	copy(out, s.dependents)
	return out
}

// ColumnNames returns the domain columns in declaration order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// RecordColumns returns every column of a stored row: id, domain and audit columns.
func (s *Schema) RecordColumns() []string {
	cols := append([]string{s.IDColumn}, s.ColumnNames()...)
	return append(cols, ColumnCreatedBy, ColumnCreatedAt, ColumnUpdatedAt, ColumnDeletedAt, ColumnIsDeleted)
}

// ExportColumns returns RecordColumns without the hidden ones.
func (s *Schema) ExportColumns() []string {
	cols := s.RecordColumns()
	out := cols[:0]
	for _, c := range cols {
		if !s.isHidden(c) {
			out = append(out, c)
		}
	}
	return out
}

// Writable returns the ordered set of columns a payload may set in mode.
func (s *Schema) Writable(mode Mode) []string {
	cols := make([]string, 0, len(s.Columns)+1)
	for _, c := range s.Columns {
		if mode == ModeUpdate && c.Immutable {
			continue
		}
		cols = append(cols, c.Name)
	}
	if mode == ModeCreate {
		return append(cols, ColumnCreatedBy)
	}
	return append(cols, ColumnIsDeleted)
}

func (s *Schema) isHidden(column string) bool {
	for _, h := range s.Hidden {
		if h == column {
			return true
		}
	}
	return false
}

var mapper = reflectx.NewMapperFunc("db", strings.ToLower)

// Values extracts the db-tagged top-level fields of dto into a column map.
// Nil pointers are treated as absent. A field naming a column the schema does
// not accept in mode yields ErrUnknownColumn.
func Values(s *Schema, dto interface{}, mode Mode) (map[string]interface{}, error) {
	v := reflect.ValueOf(dto)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, ErrInvalidDTO
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, ErrInvalidDTO
	}

	allowed := make(map[string]struct{})
	for _, c := range s.Writable(mode) {
		allowed[c] = struct{}{}
	}

	values := make(map[string]interface{})
	for _, fi := range mapper.TypeMap(v.Type()).Index {
		if len(fi.Index) != 1 || fi.Embedded {
			continue
		}
		fv := v.Field(fi.Index[0])
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if _, ok := allowed[fi.Name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, fi.Name)
		}
		values[fi.Name] = fv.Interface()
	}
	return values, nil
}
