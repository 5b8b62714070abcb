//go:build integration

package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/pkg/config"
	"github.com/Quinhas/sgpg-api/pkg/database"
)

// Postgres starts a disposable Postgres container, migrates it and returns a
// client using driver (postgres or pgx). The container stops with the test.
func Postgres(t testing.TB, driver string) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, err := postgres.RunContainer(ctx,
		tc.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("sgpg"),
		postgres.WithUsername("sgpg"),
		postgres.WithPassword("sgpg"),
		tc.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		stopCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		_ = pg.Terminate(stopCtx)
	})

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := database.Open(config.DatabaseConfig{
		Driver:   driver,
		Host:     host,
		Port:     port.Int(),
		User:     "sgpg",
		Password: "sgpg",
		Name:     "sgpg",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db.DB, driver, zap.NewNop()))
	return db
}
