package integration

import (
	"context"
	"testing"
	"time"

	"storefront/internal/kvstore"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgresStore starts a PostgreSQL container and opens a blob
// store against it. The container and store are cleaned up with the
// test.
func SetupPostgresStore(t *testing.T) *kvstore.PostgresStore {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	store, err := kvstore.OpenPostgres(ctx, connStr, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open postgres store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return store
}
