package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-stock-ledger/internal/model"

	"gorm.io/gorm/logger"
)

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "oracle"})
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestConnect_SQLiteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.db")

	db, err := Connect(Config{Driver: DriverSQLite, SQLitePath: path, LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file at %s: %v", path, err)
	}
}

func TestNewInMemory_Schema(t *testing.T) {
	db, err := NewInMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	for _, table := range []interface{}{&model.User{}, &model.Product{}} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("missing table for %T", table)
		}
	}
	if !db.Migrator().HasIndex(&model.Product{}, "Code") {
		t.Error("expected a unique index on products.code")
	}
	if !db.Migrator().HasIndex(&model.User{}, "Username") {
		t.Error("expected a unique index on users.username")
	}
}
