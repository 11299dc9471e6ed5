package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appbilling "github.com/gstbill/backend/internal/application/billing"
	"github.com/gstbill/backend/internal/domain/billing"
	"github.com/gstbill/backend/internal/interfaces/http/dto"
)

// BillingHandler generates bills and serves the sales report
type BillingHandler struct {
	BaseHandler
	billingService *appbilling.BillingService
}

// NewBillingHandler creates a BillingHandler
func NewBillingHandler(billingService *appbilling.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Generate handles POST /bills
func (h *BillingHandler) Generate(c *gin.Context) {
	var req dto.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	lines := make([]appbilling.CartLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = appbilling.CartLine{
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
	}

	result, err := h.billingService.GenerateBill(c.Request.Context(), appbilling.Cart{
		CustomerName: req.CustomerName,
		Lines:        lines,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// List handles GET /bills with optional ?from= and ?to= date bounds
func (h *BillingHandler) List(c *gin.Context) {
	from, ok := h.parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := h.parseDateParam(c, "to")
	if !ok {
		return
	}
	if !to.IsZero() {
		// Make the upper bound cover the whole day
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	bills, err := h.billingService.ListBills(c.Request.Context(), from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp := make([]dto.BillResponse, len(bills))
	for i := range bills {
		resp[i] = dto.NewBillResponse(&bills[i])
	}
	h.Success(c, resp)
}

// Get handles GET /bills/:invoice_number. Invoice numbers repeat across
// fiscal years, so ?year= selects one; it defaults to the current fiscal year.
func (h *BillingHandler) Get(c *gin.Context) {
	invoiceNumber, err := strconv.ParseInt(c.Param("invoice_number"), 10, 64)
	if err != nil {
		h.BadRequest(c, "invoice_number must be an integer")
		return
	}

	fiscalYear := billing.FiscalYear(time.Now())
	if value := c.Query("year"); value != "" {
		fiscalYear, err = strconv.Atoi(value)
		if err != nil {
			h.BadRequest(c, "year must be an integer")
			return
		}
	}

	bill, err := h.billingService.FindBill(c.Request.Context(), fiscalYear, invoiceNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.NewBillResponse(bill))
}

// parseDateParam reads an optional YYYY-MM-DD query parameter. The bool is
// false when the parameter was present but malformed and a response was sent.
func (h *BillingHandler) parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		h.BadRequest(c, name+" must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}

// RegisterRoutes registers billing routes
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bills := rg.Group("/bills")
	{
		bills.POST("", h.Generate)
		bills.GET("", h.List)
		bills.GET("/:invoice_number", h.Get)
	}
}
