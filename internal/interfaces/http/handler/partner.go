package handler

import (
	"github.com/gin-gonic/gin"

	apppartner "github.com/gstbill/backend/internal/application/partner"
	"github.com/gstbill/backend/internal/interfaces/http/dto"
)

// PartnerHandler manages customer and company master data
type PartnerHandler struct {
	BaseHandler
	partnerService *apppartner.PartnerService
}

// NewPartnerHandler creates a PartnerHandler
func NewPartnerHandler(partnerService *apppartner.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// CreateCustomer handles POST /customers
func (h *PartnerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	customer, err := h.partnerService.CreateCustomer(c.Request.Context(), req.Name, req.Address, req.GSTNumber, req.Contact)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, dto.NewCustomerResponse(customer))
}

// ListCustomers handles GET /customers
func (h *PartnerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.partnerService.ListCustomers(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = dto.NewCustomerResponse(&customers[i])
	}
	h.Success(c, resp)
}

// GetCustomer handles GET /customers/:name
func (h *PartnerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.partnerService.LookupCustomer(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewCustomerResponse(customer))
}

// CreateCompany handles POST /companies
func (h *PartnerHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	company, err := h.partnerService.CreateCompany(c.Request.Context(), req.Name, req.GSTNumber, req.Contact)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, dto.NewCompanyResponse(company))
}

// ListCompanies handles GET /companies
func (h *PartnerHandler) ListCompanies(c *gin.Context) {
	companies, err := h.partnerService.ListCompanies(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp := make([]dto.CompanyResponse, len(companies))
	for i := range companies {
		resp[i] = dto.NewCompanyResponse(&companies[i])
	}
	h.Success(c, resp)
}

// RegisterRoutes registers partner routes
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:name", h.GetCustomer)
	}
	companies := rg.Group("/companies")
	{
		companies.POST("", h.CreateCompany)
		companies.GET("", h.ListCompanies)
	}
}
