package service

import (
	"context"

	"go-stock-ledger/internal/model"
	"go-stock-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService derives stock figures from the current products. Every call
// reads the store; nothing is cached.
type ReportService interface {
	TotalProductCount(ctx context.Context, actor model.Identity) (int64, error)
	TotalCategoryCount(ctx context.Context, actor model.Identity) (int64, error)
	LowStockCount(ctx context.Context, actor model.Identity) (int64, error)
	OutOfStockCount(ctx context.Context, actor model.Identity) (int64, error)
	TotalInventoryValue(ctx context.Context, actor model.Identity) (decimal.Decimal, error)
	Summary(ctx context.Context, actor model.Identity) (*Summary, error)
}

// Summary is the dashboard view, all figures taken from the same snapshot
type Summary struct {
	TotalProducts       int64           `json:"total_products"`
	TotalCategories     int64           `json:"total_categories"`
	LowStockCount       int64           `json:"low_stock_count"`
	OutOfStockCount     int64           `json:"out_of_stock_count"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) TotalProductCount(ctx context.Context, actor model.Identity) (int64, error) {
	return s.count(ctx, actor, s.reportRepo.CountProducts)
}

func (s *reportService) TotalCategoryCount(ctx context.Context, actor model.Identity) (int64, error) {
	return s.count(ctx, actor, s.reportRepo.CountCategories)
}

// LowStockCount counts products with 0 < quantity <= reorder_threshold.
// Empty products are reported by OutOfStockCount instead.
func (s *reportService) LowStockCount(ctx context.Context, actor model.Identity) (int64, error) {
	return s.count(ctx, actor, s.reportRepo.CountLowStock)
}

func (s *reportService) OutOfStockCount(ctx context.Context, actor model.Identity) (int64, error) {
	return s.count(ctx, actor, s.reportRepo.CountOutOfStock)
}

func (s *reportService) TotalInventoryValue(ctx context.Context, actor model.Identity) (decimal.Decimal, error) {
	if actor.IsZero() {
		return decimal.Zero, ErrAuthFailure
	}
	rows, err := s.reportRepo.Valuations(ctx)
	if err != nil {
		return decimal.Zero, storeErr(err)
	}
	return sumValuations(rows), nil
}

func (s *reportService) Summary(ctx context.Context, actor model.Identity) (*Summary, error) {
	if actor.IsZero() {
		return nil, ErrAuthFailure
	}
	snap, err := s.reportRepo.Snapshot(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return &Summary{
		TotalProducts:       snap.TotalProducts,
		TotalCategories:     snap.TotalCategories,
		LowStockCount:       snap.LowStock,
		OutOfStockCount:     snap.OutOfStock,
		TotalInventoryValue: sumValuations(snap.Valuations),
	}, nil
}

func (s *reportService) count(ctx context.Context, actor model.Identity, query func(context.Context) (int64, error)) (int64, error) {
	if actor.IsZero() {
		return 0, ErrAuthFailure
	}
	n, err := query(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func sumValuations(rows []repository.StockValuation) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Price.Mul(decimal.NewFromInt(r.Quantity)))
	}
	return total
}
