package models

import "time"

// Audit holds the bookkeeping columns every school entity carries.
// DeletedAt is set exactly when IsDeleted is true.
type Audit struct {
	CreatedBy int64      `db:"created_by" json:"created_by"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at"`
	IsDeleted *bool      `db:"is_deleted" json:"is_deleted"`
}

// Deleted reports whether the record is soft-deleted.
func (a Audit) Deleted() bool {
	return a.IsDeleted != nil && *a.IsDeleted
}
