package ws

import "go-stock-ledger/internal/model"

const (
	ActionProductUpserted = "product_upserted"
	ActionProductRemoved  = "product_removed"
)

// Event is what live clients receive after a successful ledger write
type Event struct {
	Type    string         `json:"type"`
	Action  string         `json:"action"`
	Product *model.Product `json:"product,omitempty"`
	User    model.Identity `json:"user"`
	Message string         `json:"message"`
}

func StockUpdate(action string, product *model.Product, actor model.Identity, message string) Event {
	return Event{
		Type:    "stock_update",
		Action:  action,
		Product: product,
		User:    actor,
		Message: message,
	}
}
