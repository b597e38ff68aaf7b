package model

import "github.com/shopspring/decimal"

type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

type Product struct {
	BaseModel
	Code             string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Category         string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Price            decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"price"`
	Quantity         int64           `gorm:"not null;default:0" json:"quantity"`
	ReorderThreshold int64           `gorm:"not null;default:0" json:"reorder_threshold"`
}

// StockStatus classifies the product. Zero stock is out of stock, never low stock.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Quantity == 0:
		return StatusOutOfStock
	case p.Quantity <= p.ReorderThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// StockValue is price * quantity, exact
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}
