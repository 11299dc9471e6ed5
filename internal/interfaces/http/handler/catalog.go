package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/gstbill/backend/internal/application/catalog"
	"github.com/gstbill/backend/internal/interfaces/http/dto"
)

// CatalogHandler manages the GST slab catalog and settings
type CatalogHandler struct {
	BaseHandler
	catalogService *appcatalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler
func NewCatalogHandler(catalogService *appcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateSlab handles POST /gst-slabs
func (h *CatalogHandler) CreateSlab(c *gin.Context) {
	var req dto.CreateGSTSlabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	slab, err := h.catalogService.AddGSTSlab(c.Request.Context(), req.Rate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, gin.H{"id": slab.ID, "rate": slab.Rate})
}

// ListSlabs handles GET /gst-slabs
func (h *CatalogHandler) ListSlabs(c *gin.Context) {
	slabs, err := h.catalogService.ListGSTSlabs(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rates := make([]gin.H, len(slabs))
	for i, s := range slabs {
		rates[i] = gin.H{"id": s.ID, "rate": s.Rate}
	}
	h.Success(c, rates)
}

// GetSettings handles GET /settings
func (h *CatalogHandler) GetSettings(c *gin.Context) {
	settings, err := h.catalogService.GetSettings(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{
		"year":                settings.Year,
		"low_stock_threshold": settings.LowStockThreshold,
	})
}

// SetLowStockThreshold handles PUT /settings/low-stock-threshold
func (h *CatalogHandler) SetLowStockThreshold(c *gin.Context) {
	var req dto.SetLowStockThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	if err := h.catalogService.SetLowStockThreshold(c.Request.Context(), req.Threshold); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"threshold": req.Threshold})
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	slabs := rg.Group("/gst-slabs")
	{
		slabs.POST("", h.CreateSlab)
		slabs.GET("", h.ListSlabs)
	}
	settings := rg.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("/low-stock-threshold", h.SetLowStockThreshold)
	}
}
