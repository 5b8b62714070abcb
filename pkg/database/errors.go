package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Violation classifies storage constraint failures independently of the driver.
type Violation int

const (
	ViolationNone Violation = iota
	ViolationUnique
	ViolationForeignKey
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify inspects err for a unique or foreign key constraint failure raised
// by any of the supported drivers.
func Classify(err error) Violation {
	if err == nil {
		return ViolationNone
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fromSQLState(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromSQLState(pgErr.Code)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ViolationUnique
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ViolationForeignKey
		case sqlite3.SQLITE_CONSTRAINT:
			// Primary result code only; fall back to the message.
			msg := liteErr.Error()
			switch {
			case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "PRIMARY KEY"):
				return ViolationUnique
			case strings.Contains(msg, "FOREIGN KEY constraint failed"):
				return ViolationForeignKey
			}
		}
	}

	return ViolationNone
}

func fromSQLState(code string) Violation {
	switch code {
	case pgUniqueViolation:
		return ViolationUnique
	case pgForeignKeyViolation:
		return ViolationForeignKey
	default:
		return ViolationNone
	}
}
