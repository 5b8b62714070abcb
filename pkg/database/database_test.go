package database

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/pkg/config"
)

func TestDataSource(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", Name: "sgpg", SSLMode: "disable"}

	driver, dsn, err := dataSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres", driver)
	assert.Equal(t, "host=db port=5432 user=u password=p@ss dbname=sgpg sslmode=disable", dsn)

	cfg.Driver = config.DriverPgx
	driver, dsn, err = dataSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, "pgx", driver)
	assert.Equal(t, "postgres://u:p%40ss@db:5432/sgpg?sslmode=disable", dsn)

	driver, dsn, err = dataSource(config.DatabaseConfig{Driver: config.DriverSQLite, Path: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", driver)
	assert.Contains(t, dsn, "foreign_keys(1)")

	_, _, err = dataSource(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestClassifyDriverErrors(t *testing.T) {
	assert.Equal(t, ViolationNone, Classify(nil))
	assert.Equal(t, ViolationUnique, Classify(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.Equal(t, ViolationForeignKey, Classify(&pq.Error{Code: "23503"}))
	assert.Equal(t, ViolationUnique, Classify(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, ViolationForeignKey, Classify(&pgconn.PgError{Code: "23503"}))
	assert.Equal(t, ViolationNone, Classify(&pgconn.PgError{Code: "42P01"}))
}

func TestMigrateSQLiteAndClassify(t *testing.T) {
	db, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db.DB, config.DriverSQLite, zap.NewNop()))
	// A second run is a no-op.
	require.NoError(t, Migrate(db.DB, config.DriverSQLite, zap.NewNop()))

	insert := `INSERT INTO roles (role_title, created_by, created_at) VALUES (?, 1, CURRENT_TIMESTAMP)`
	_, err = db.Exec(insert, "Teacher")
	require.NoError(t, err)

	_, err = db.Exec(insert, "Teacher")
	require.Error(t, err)
	assert.Equal(t, ViolationUnique, Classify(err))

	_, err = db.Exec(`INSERT INTO employees (employee_name, employee_cpf, employee_email, employee_password,
		employee_phone, employee_addr, employee_salary, employee_role, created_by)
		VALUES ('A', '1', 'a@x.test', 'h', '9', 'street', 10, 999, 1)`)
	require.Error(t, err)
	assert.Equal(t, ViolationForeignKey, Classify(err))
}
