package service

import (
	"context"
	"strings"

	"go-stock-ledger/internal/model"
	"go-stock-ledger/internal/repository"
	"go-stock-ledger/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// InventoryService owns the product catalog: upsert by code, removal and listing
type InventoryService interface {
	Upsert(ctx context.Context, actor model.Identity, in ProductInput) (*model.Product, error)
	Remove(ctx context.Context, actor model.Identity, id uint) error
	List(ctx context.Context, actor model.Identity) ([]model.Product, error)
	Get(ctx context.Context, actor model.Identity, id uint) (*model.Product, error)
}

// ProductInput is a stock receipt. Quantity is added to the stored quantity when
// the code already exists; every other field replaces the stored value.
type ProductInput struct {
	Code             string `validate:"notblank"`
	Name             string `validate:"notblank"`
	Category         string `validate:"notblank"`
	Price            decimal.Decimal
	Quantity         int64
	ReorderThreshold int64
}

type inventoryService struct {
	productRepo repository.ProductRepository
}

func NewInventoryService(pRepo repository.ProductRepository) InventoryService {
	return &inventoryService{productRepo: pRepo}
}

// normalizeProduct trims the text fields, rejects blank ones and clamps the
// numeric fields: a negative price, quantity or reorder threshold becomes 0.
func normalizeProduct(in ProductInput) (*model.Product, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)

	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	clamped := logrus.Fields{}
	if in.Price.IsNegative() {
		clamped["price"] = in.Price.String()
		in.Price = decimal.Zero
	}
	if in.Quantity < 0 {
		clamped["quantity"] = in.Quantity
		in.Quantity = 0
	}
	if in.ReorderThreshold < 0 {
		clamped["reorder_threshold"] = in.ReorderThreshold
		in.ReorderThreshold = 0
	}
	if len(clamped) > 0 {
		logrus.WithFields(clamped).WithField("code", in.Code).Debug("Clamped negative product fields to 0")
	}

	return &model.Product{
		Code:             in.Code,
		Name:             in.Name,
		Category:         in.Category,
		Price:            in.Price,
		Quantity:         in.Quantity,
		ReorderThreshold: in.ReorderThreshold,
	}, nil
}

func (s *inventoryService) Upsert(ctx context.Context, actor model.Identity, in ProductInput) (*model.Product, error) {
	if actor.IsZero() {
		return nil, ErrAuthFailure
	}

	// 1. Validate & clamp
	product, err := normalizeProduct(in)
	if err != nil {
		return nil, err
	}

	// 2. Set Audit Fields
	product.Stamp(actor)

	// 3. Insert or merge atomically
	stored, err := s.productRepo.Upsert(ctx, product)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"actor": actor.Username,
			"code":  product.Code,
		}).Error("Product upsert failed")
		return nil, storeErr(err)
	}

	logrus.WithFields(logrus.Fields{
		"actor":      actor.Username,
		"product_id": stored.ID,
		"code":       stored.Code,
		"received":   product.Quantity,
		"quantity":   stored.Quantity,
	}).Info("Product upserted")

	return stored, nil
}

func (s *inventoryService) Remove(ctx context.Context, actor model.Identity, id uint) error {
	if actor.IsZero() {
		return ErrAuthFailure
	}

	removed, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("product_id", id).Error("Product removal failed")
		return storeErr(err)
	}

	logrus.WithFields(logrus.Fields{
		"actor":      actor.Username,
		"product_id": id,
		"removed":    removed,
	}).Info("Product remove")
	return nil
}

func (s *inventoryService) List(ctx context.Context, actor model.Identity) ([]model.Product, error) {
	if actor.IsZero() {
		return nil, ErrAuthFailure
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return products, nil
}

func (s *inventoryService) Get(ctx context.Context, actor model.Identity, id uint) (*model.Product, error) {
	if actor.IsZero() {
		return nil, ErrAuthFailure
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, storeErr(err)
	}
	return product, nil
}
