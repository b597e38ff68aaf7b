package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go-stock-ledger/internal/middleware"
	"go-stock-ledger/internal/model"
	"go-stock-ledger/internal/service"
	"go-stock-ledger/internal/ws"
	"go-stock-ledger/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Publisher receives ledger events after successful writes
type Publisher interface {
	Publish(event ws.Event)
}

type InventoryHandler struct {
	service   service.InventoryService
	publisher Publisher
}

func NewInventoryHandler(s service.InventoryService, p Publisher) *InventoryHandler {
	return &InventoryHandler{service: s, publisher: p}
}

// rawValue accepts a JSON string or a bare JSON literal (number, null) and keeps its text
type rawValue string

func (v *rawValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = rawValue(s)
		return nil
	}
	*v = rawValue(strings.TrimSpace(string(b)))
	return nil
}

// ProductRequest is a stock receipt as sent by clients. Numeric fields are kept
// as text until ParseCount/ParseAmount turn them into clamped values.
type ProductRequest struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Price            rawValue `json:"price"`
	Quantity         rawValue `json:"quantity"`
	ReorderThreshold rawValue `json:"reorder_threshold"`
}

func (r *ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Code:             r.Code,
		Name:             r.Name,
		Category:         r.Category,
		Price:            validator.ParseAmount(string(r.Price)),
		Quantity:         validator.ParseCount(string(r.Quantity)),
		ReorderThreshold: validator.ParseCount(string(r.ReorderThreshold)),
	}
}

func parseProductRequest(c *fiber.Ctx) (*ProductRequest, error) {
	var req ProductRequest
	if c.Is("json") {
		if err := c.BodyParser(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	req.Code = c.FormValue("code")
	req.Name = c.FormValue("name")
	req.Category = c.FormValue("category")
	req.Price = rawValue(c.FormValue("price"))
	req.Quantity = rawValue(c.FormValue("quantity", c.FormValue("qty")))
	req.ReorderThreshold = rawValue(c.FormValue("reorder_threshold"))
	return &req, nil
}

// ProductResponse adds the derived stock status and value to a product
type ProductResponse struct {
	model.Product
	Status model.StockStatus `json:"status"`
	Value  decimal.Decimal   `json:"value"`
}

func toResponse(p *model.Product) ProductResponse {
	return ProductResponse{Product: *p, Status: p.StockStatus(), Value: p.StockValue()}
}

// GetProducts lists every product, newest first
// GET /api/v1/products
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext(), middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}

	data := make([]ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, toResponse(&products[i]))
	}
	return c.JSON(data)
}

// UpsertProduct records a stock receipt: creates the product or merges into the existing code
// POST /api/v1/products
func (h *InventoryHandler) UpsertProduct(c *fiber.Ctx) error {
	req, err := parseProductRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	actor := middleware.Identity(c)
	in := req.toInput()
	product, err := h.service.Upsert(c.UserContext(), actor, in)
	if err != nil {
		return respondError(c, err)
	}

	h.publisher.Publish(ws.StockUpdate(ws.ActionProductUpserted, product, actor,
		fmt.Sprintf("%s received %d units of '%s'", actor.Username, in.Quantity, product.Name)))

	return c.JSON(fiber.Map{"message": "Product saved", "data": toResponse(product)})
}

// RemoveProduct deletes a product; unknown ids succeed as well
// DELETE /api/v1/products/:id
func (h *InventoryHandler) RemoveProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	ctx := c.UserContext()
	actor := middleware.Identity(c)

	// only used for the live event, a missing product is fine
	existing, _ := h.service.Get(ctx, actor, uint(id))

	if err := h.service.Remove(ctx, actor, uint(id)); err != nil {
		return respondError(c, err)
	}

	if existing != nil {
		h.publisher.Publish(ws.StockUpdate(ws.ActionProductRemoved, existing, actor,
			fmt.Sprintf("%s removed product '%s'", actor.Username, existing.Name)))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
