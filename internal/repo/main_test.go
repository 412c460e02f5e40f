package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/moxie-medspa/backend/testutil"
)

// TestMain applies all pending migrations to the test database once for the
// whole package so individual tests never need to think about schema state.
func TestMain(m *testing.M) {
	dsn := os.Getenv(testutil.DSNEnv)
	if dsn == "" {
		// No test DB configured: every test skips via testutil.NewPool.
		os.Exit(m.Run())
	}

	if err := testutil.MigrateUp(context.Background(), dsn); err != nil {
		log.Fatalf("TestMain: %v", err)
	}

	os.Exit(m.Run())
}
