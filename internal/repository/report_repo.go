package repository

import (
	"context"

	"go-stock-ledger/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	CountOutOfStock(ctx context.Context) (int64, error)
	Valuations(ctx context.Context) ([]StockValuation, error)
	Snapshot(ctx context.Context) (*StockSnapshot, error)
}

// StockValuation is the part of a product row that the inventory value needs
type StockValuation struct {
	Price    decimal.Decimal
	Quantity int64
}

// StockSnapshot holds every report figure read inside one transaction
type StockSnapshot struct {
	TotalProducts   int64
	TotalCategories int64
	LowStock        int64
	OutOfStock      int64
	Valuations      []StockValuation
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

func (r *reportRepo) CountProducts(ctx context.Context) (int64, error) {
	return countProducts(r.db.WithContext(ctx))
}

func (r *reportRepo) CountCategories(ctx context.Context) (int64, error) {
	return countCategories(r.db.WithContext(ctx))
}

func (r *reportRepo) CountLowStock(ctx context.Context) (int64, error) {
	return countLowStock(r.db.WithContext(ctx))
}

func (r *reportRepo) CountOutOfStock(ctx context.Context) (int64, error) {
	return countOutOfStock(r.db.WithContext(ctx))
}

func (r *reportRepo) Valuations(ctx context.Context) ([]StockValuation, error) {
	return valuations(r.db.WithContext(ctx))
}

func (r *reportRepo) Snapshot(ctx context.Context) (*StockSnapshot, error) {
	var snap StockSnapshot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if snap.TotalProducts, err = countProducts(tx); err != nil {
			return err
		}
		if snap.TotalCategories, err = countCategories(tx); err != nil {
			return err
		}
		if snap.LowStock, err = countLowStock(tx); err != nil {
			return err
		}
		if snap.OutOfStock, err = countOutOfStock(tx); err != nil {
			return err
		}
		snap.Valuations, err = valuations(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func countProducts(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.Product{}).Count(&n).Error
	return n, err
}

func countCategories(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.Product{}).Distinct("category").Count(&n).Error
	return n, err
}

// Low stock excludes empty shelves, those are counted by countOutOfStock
func countLowStock(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.Product{}).
		Where("quantity > 0 AND quantity <= reorder_threshold").
		Count(&n).Error
	return n, err
}

func countOutOfStock(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.Product{}).Where("quantity = 0").Count(&n).Error
	return n, err
}

// valuations pulls price and quantity so the sum can be done exactly in Go
// instead of with the store's numeric types
func valuations(db *gorm.DB) ([]StockValuation, error) {
	rows := []StockValuation{}
	err := db.Model(&model.Product{}).Select("price", "quantity").Find(&rows).Error
	return rows, err
}
