package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appinv "github.com/gstbill/backend/internal/application/inventory"
	"github.com/gstbill/backend/internal/interfaces/http/dto"
)

// PurchaseHandler records purchase entries
type PurchaseHandler struct {
	BaseHandler
	purchaseService *appinv.PurchaseService
	stockService    *appinv.StockService
}

// NewPurchaseHandler creates a PurchaseHandler
func NewPurchaseHandler(purchaseService *appinv.PurchaseService, stockService *appinv.StockService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		stockService:    stockService,
	}
}

// Create handles POST /purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		h.BadRequest(c, "purchase_date must be YYYY-MM-DD")
		return
	}

	lines := make([]appinv.PurchaseLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = appinv.PurchaseLineInput{
			ProductName: l.ProductName,
			Brand:       l.Brand,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			GSTSlab:     l.GSTSlab,
			CESSRate:    l.CESSRate,
		}
	}

	result, err := h.purchaseService.RecordPurchase(c.Request.Context(), appinv.PurchaseInput{
		CompanyName:     req.CompanyName,
		SupplierInvoice: req.SupplierInvoice,
		PurchaseDate:    purchaseDate,
		Lines:           lines,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"batch_ids": result.BatchIDs})
}

// History handles GET /purchases, optionally filtered by ?product=
func (h *PurchaseHandler) History(c *gin.Context) {
	records, err := h.stockService.PurchaseHistory(c.Request.Context(), c.Query("product"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp := make([]dto.PurchaseRecordResponse, len(records))
	for i, r := range records {
		resp[i] = dto.NewPurchaseRecordResponse(r)
	}
	h.Success(c, resp)
}

// RegisterRoutes registers purchase routes
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.Create)
		purchases.GET("", h.History)
	}
}
