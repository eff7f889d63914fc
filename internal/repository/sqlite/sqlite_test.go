package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/itsatony/gartentrack/internal/config"
	"github.com/itsatony/gartentrack/internal/database"
)

// openDeviceTestDB opens a fresh device store in a temp dir.
func openDeviceTestDB(t *testing.T) database.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "devices.db"),
		BusyTimeout: 5,
		WALMode:     true,
	})
	if err != nil {
		t.Fatalf("NewSQLiteDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.EnsureDeviceSchema(db); err != nil {
		t.Fatalf("EnsureDeviceSchema() error = %v", err)
	}
	return db
}

// openBottleTestDB opens a fresh bottle store in a temp dir.
func openBottleTestDB(t *testing.T) database.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "bottles.db"),
		BusyTimeout: 5,
		WALMode:     true,
	})
	if err != nil {
		t.Fatalf("NewSQLiteDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.EnsureBottleSchema(db); err != nil {
		t.Fatalf("EnsureBottleSchema() error = %v", err)
	}
	return db
}
