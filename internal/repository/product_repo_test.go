package repository

import (
	"context"
	"testing"

	"go-stock-ledger/internal/model"
	"go-stock-ledger/pkg/database"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func widget(code string, qty int64) *model.Product {
	return &model.Product{
		Code:             code,
		Name:             "Widget",
		Category:         "Tools",
		Price:            decimal.RequireFromString("2.00"),
		Quantity:         qty,
		ReorderThreshold: 2,
	}
}

func TestProductRepo_UpsertInsertsThenMerges(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(newTestDB(t))

	first, err := repo.Upsert(ctx, widget("A1", 5))
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == 0 || first.Quantity != 5 {
		t.Fatalf("unexpected first product: %+v", first)
	}

	next := widget("A1", 3)
	next.Name = "Widget v2"
	next.Category = "Hardware"
	next.Price = decimal.RequireFromString("2.50")
	next.ReorderThreshold = 4
	second, err := repo.Upsert(ctx, next)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected same id %d, got %d", first.ID, second.ID)
	}
	if second.Quantity != 8 {
		t.Errorf("expected quantity 8, got %d", second.Quantity)
	}
	if second.Name != "Widget v2" || second.Category != "Hardware" || second.ReorderThreshold != 4 {
		t.Errorf("descriptive fields not overwritten: %+v", second)
	}
	if !second.Price.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("expected price 2.5, got %s", second.Price)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected exactly one row, got %d", len(all))
	}
}

func TestProductRepo_DeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(newTestDB(t))

	if _, err := repo.Upsert(ctx, widget("A1", 1)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	removed, err := repo.Delete(ctx, 9999)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if removed {
		t.Error("expected nothing to be removed")
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 product, got %d", len(all))
	}
}

func TestProductRepo_DeleteExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(newTestDB(t))

	p, err := repo.Upsert(ctx, widget("A1", 1))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	removed, err := repo.Delete(ctx, p.ID)
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	if _, err := repo.FindByID(ctx, p.ID); !IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestProductRepo_FindAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(newTestDB(t))

	for _, code := range []string{"A", "B", "C"} {
		if _, err := repo.Upsert(ctx, widget(code, 1)); err != nil {
			t.Fatalf("upsert %s: %v", code, err)
		}
	}
	// merging into an old code does not move it
	if _, err := repo.Upsert(ctx, widget("A", 1)); err != nil {
		t.Fatalf("merge: %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	got := []string{}
	for _, p := range all {
		got = append(got, p.Code)
	}
	want := []string{"C", "B", "A"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestProductRepo_FindAllEmptyIsNotNil(t *testing.T) {
	all, err := NewProductRepo(newTestDB(t)).FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if all == nil {
		t.Error("expected an empty slice, got nil")
	}
}
