package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hsf/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers wired into the API
type Handlers struct {
	Auth            *handler.AuthHandler
	Component       *handler.ComponentHandler
	PurchaseInvoice *handler.PurchaseInvoiceHandler
	InboundDelivery *handler.InboundDeliveryHandler
	Cart            *handler.CartHandler
	SalesQuote      *handler.SalesQuoteHandler
	SalesInvoice    *handler.SalesInvoiceHandler
	SalesDelivery   *handler.SalesDeliveryHandler
	Stock           *handler.StockHandler
}

// AuthRoutes mounts login and logout endpoints
type AuthRoutes struct {
	h *handler.AuthHandler
}

func NewAuthRoutes(h *handler.AuthHandler) *AuthRoutes {
	return &AuthRoutes{h: h}
}

func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	authGroup.POST("/login", r.h.Login)
	authGroup.POST("/logout", r.h.Logout)
}

// CatalogRoutes mounts component and category endpoints
type CatalogRoutes struct {
	h *handler.ComponentHandler
}

func NewCatalogRoutes(h *handler.ComponentHandler) *CatalogRoutes {
	return &CatalogRoutes{h: h}
}

func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	components := rg.Group("/components")
	components.POST("", r.h.Create)
	components.GET("", r.h.List)
	components.GET("/:id", r.h.Get)
	components.PUT("/:id", r.h.Update)
	components.PUT("/:id/prices", r.h.SetPrice)
	components.DELETE("/:id", r.h.Delete)

	categories := rg.Group("/categories")
	categories.POST("", r.h.CreateCategory)
	categories.GET("", r.h.ListCategories)
}

// ProcurementRoutes mounts purchase invoice and inbound delivery endpoints
type ProcurementRoutes struct {
	invoices   *handler.PurchaseInvoiceHandler
	deliveries *handler.InboundDeliveryHandler
}

func NewProcurementRoutes(invoices *handler.PurchaseInvoiceHandler, deliveries *handler.InboundDeliveryHandler) *ProcurementRoutes {
	return &ProcurementRoutes{invoices: invoices, deliveries: deliveries}
}

func (r *ProcurementRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/purchase-invoices")
	invoices.POST("", r.invoices.Create)
	invoices.GET("", r.invoices.List)
	invoices.GET("/number/:no", r.invoices.GetByNumber)
	invoices.GET("/:id", r.invoices.Get)
	invoices.PUT("/:id", r.invoices.Update)
	invoices.PUT("/:id/lines/:line_id", r.invoices.UpdateLine)
	invoices.DELETE("/:id", r.invoices.Delete)

	deliveries := rg.Group("/inbound-deliveries")
	deliveries.POST("", r.deliveries.Create)
	deliveries.GET("", r.deliveries.List)
	deliveries.GET("/:id", r.deliveries.Get)
	deliveries.DELETE("/:id", r.deliveries.Delete)
}

// SalesRoutes mounts cart, quote, invoice and delivery endpoints
type SalesRoutes struct {
	cart       *handler.CartHandler
	quotes     *handler.SalesQuoteHandler
	invoices   *handler.SalesInvoiceHandler
	deliveries *handler.SalesDeliveryHandler
}

func NewSalesRoutes(cart *handler.CartHandler, quotes *handler.SalesQuoteHandler, invoices *handler.SalesInvoiceHandler, deliveries *handler.SalesDeliveryHandler) *SalesRoutes {
	return &SalesRoutes{cart: cart, quotes: quotes, invoices: invoices, deliveries: deliveries}
}

func (r *SalesRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.GET("", r.cart.List)
	cart.POST("/lines", r.cart.AddLine)
	cart.PUT("/lines/:id", r.cart.UpdateLine)
	cart.DELETE("/lines/:id", r.cart.RemoveLine)
	cart.DELETE("", r.cart.Clear)

	quotes := rg.Group("/sales-quotes")
	quotes.POST("", r.quotes.Create)
	quotes.GET("", r.quotes.List)
	quotes.GET("/number/:no", r.quotes.GetByNumber)
	quotes.GET("/:id", r.quotes.Get)
	quotes.DELETE("/:id", r.quotes.Delete)

	invoices := rg.Group("/sales-invoices")
	invoices.POST("", r.invoices.Promote)
	invoices.GET("", r.invoices.List)
	invoices.GET("/number/:no", r.invoices.GetByNumber)
	invoices.GET("/:id", r.invoices.Get)
	invoices.POST("/:id/void", r.invoices.Void)

	deliveries := rg.Group("/sales-deliveries")
	deliveries.POST("", r.deliveries.Create)
	deliveries.GET("", r.deliveries.List)
	deliveries.GET("/:id", r.deliveries.Get)
	deliveries.POST("/:id/deliver", r.deliveries.MarkDelivered)
	deliveries.POST("/:id/void", r.deliveries.Void)
}

// StockRoutes mounts stock reporting endpoints
type StockRoutes struct {
	h *handler.StockHandler
}

func NewStockRoutes(h *handler.StockHandler) *StockRoutes {
	return &StockRoutes{h: h}
}

func (r *StockRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	stock.GET("/movements", r.h.Movements)
	stock.GET("/on-hand", r.h.OnHand)
}

// RegisterAll wires every domain's routes into the router
func RegisterAll(r *Router, h Handlers) {
	r.Register(
		NewAuthRoutes(h.Auth),
		NewCatalogRoutes(h.Component),
		NewProcurementRoutes(h.PurchaseInvoice, h.InboundDelivery),
		NewSalesRoutes(h.Cart, h.SalesQuote, h.SalesInvoice, h.SalesDelivery),
		NewStockRoutes(h.Stock),
	)
}
