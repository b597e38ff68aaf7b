package handler

import (
	"go-stock-ledger/internal/middleware"
	"go-stock-ledger/internal/ws"
	"go-stock-ledger/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type Router struct {
	Auth      *AuthHandler
	Inventory *InventoryHandler
	Dashboard *DashboardHandler
	Tokens    *jwt.Manager
	Hub       *ws.Hub
}

func (r *Router) Mount(app *fiber.App) {
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", r.Auth.Register)
	auth.Post("/login", r.Auth.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(r.Tokens))

	protected.Get("/products", r.Inventory.GetProducts)
	protected.Post("/products", r.Inventory.UpsertProduct)
	protected.Delete("/products/:id", r.Inventory.RemoveProduct)

	protected.Get("/dashboard/stats", r.Dashboard.GetDashboardStats)

	if r.Hub == nil {
		return
	}

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		r.Hub.Register <- c
		defer func() { r.Hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
