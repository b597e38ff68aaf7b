package repository

import (
	"context"

	"go-stock-ledger/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id uint) (bool, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByCode(ctx context.Context, code string) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// Upsert inserts the product or, when its code already exists, overwrites the
// descriptive fields and adds the incoming quantity to the stored one. The merge
// is a single INSERT .. ON CONFLICT statement so concurrent receipts of the same
// code can neither duplicate the row nor lose a quantity.
func (r *productRepo) Upsert(ctx context.Context, product *model.Product) (*model.Product, error) {
	var stored model.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: mergeAssignments(tx.Dialector.Name()),
		}).Create(product).Error
		if err != nil {
			return err
		}

		// product.ID is not reliable after a conflict on every driver, read back by code
		return tx.Where("code = ?", product.Code).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func mergeAssignments(dialect string) clause.Set {
	set := clause.AssignmentColumns([]string{
		"name", "category", "price", "reorder_threshold", "updated_at", "updated_by",
	})

	quantity := gorm.Expr("products.quantity + excluded.quantity")
	if dialect == "mysql" {
		quantity = gorm.Expr("quantity + VALUES(quantity)")
	}
	return append(set, clause.Assignment{Column: clause.Column{Name: "quantity"}, Value: quantity})
}

// Delete removes the product; a missing id is not an error
func (r *productRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindAll returns every product, newest first
func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).Order("id DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
