package service

import (
	"testing"

	"go-stock-ledger/internal/model"
	"go-stock-ledger/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var alice = model.Identity{UserID: 1, Username: "alice"}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { closeDB(db) })
	return db
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

const testCost = bcrypt.MinCost
