package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/migrations"
	"github.com/Quinhas/sgpg-api/pkg/config"
)

// goose keeps its dialect and filesystem in package state.
var migrateMu sync.Mutex

// Migrate applies the embedded migrations for driver up to the latest version.
func Migrate(db *sql.DB, driver string, logger *zap.Logger) error {
	var (
		fsys    fs.FS
		dialect string
	)
	switch driver {
	case "", config.DriverPostgres, config.DriverPgx:
		fsys, dialect = migrations.Postgres, "postgres"
	case config.DriverSQLite:
		fsys, dialect = migrations.SQLite, "sqlite3"
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{logger.Sugar()})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrations.Dir(driver)); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) { l.s.Infof(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.s.Fatalf(format, v...) }
