package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GustavoCaso/zerobudget/internal/config"
	"github.com/GustavoCaso/zerobudget/internal/logger"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/storage/sqlite"
)

// SetupTestStorage returns a migrated store backed by a fresh database file
// that is removed when the test ends.
func SetupTestStorage(t *testing.T, logger *logger.Logger) storage.Storage {
	t.Helper()

	s, err := sqlite.New(config.DBConfig{
		Source: filepath.Join(t.TempDir(), "zerobudget_test.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}

	if err = s.ApplyMigrations(context.Background(), logger); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test storage: %v", err)
		}
	})

	return s
}
