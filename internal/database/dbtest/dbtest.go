// Package dbtest starts a throwaway PostgreSQL container with the bookstore
// schema applied, for integration tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm/logger"

	"bookstore-report/internal/database"
)

const image = "postgres:16-alpine"

// Start skips the test under -short or when Docker is unavailable.
func Start(t *testing.T) *database.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase("bookstore"),
		tcpostgres.WithUsername("reporter"),
		tcpostgres.WithPassword("secret"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := database.Open(ctx, dsn, logger.Silent)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(db.Close)

	if err := database.RunMigrations(ctx, db.Pool); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}
