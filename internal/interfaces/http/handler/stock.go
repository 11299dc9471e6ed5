package handler

import (
	"github.com/gin-gonic/gin"

	appinv "github.com/gstbill/backend/internal/application/inventory"
	"github.com/gstbill/backend/internal/interfaces/http/dto"
)

// StockHandler answers stock level queries
type StockHandler struct {
	BaseHandler
	stockService *appinv.StockService
}

// NewStockHandler creates a StockHandler
func NewStockHandler(stockService *appinv.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Get handles GET /stock/:product
func (h *StockHandler) Get(c *gin.Context) {
	product := c.Param("product")
	total, err := h.stockService.AvailableStock(c.Request.Context(), product)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{
		"product_name": product,
		"available":    total,
	})
}

// Low handles GET /stock/low
func (h *StockHandler) Low(c *gin.Context) {
	rows, err := h.stockService.LowStock(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp := make([]dto.ProductStockResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.ProductStockResponse{
			ProductName: r.ProductName,
			Brand:       r.Brand,
			Remaining:   r.Remaining,
		}
	}
	h.Success(c, resp)
}

// RegisterRoutes registers stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.GET("/low", h.Low)
		stock.GET("/:product", h.Get)
	}
}
