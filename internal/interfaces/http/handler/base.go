package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gstbill/backend/internal/domain/shared"
	"github.com/gstbill/backend/internal/interfaces/http/dto"
	"github.com/gstbill/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID set by the RequestID middleware
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a 200 response with the standard envelope
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// InvalidJSON sends a 400 response for unparseable or invalid request
// bodies. Validator errors carry per-field details.
func (h *BaseHandler) InvalidJSON(c *gin.Context, err error) {
	if details := middleware.FormatValidationErrors(err); details != nil {
		resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeValidation, "Request validation failed", getRequestID(c))
		resp.Error.Details = details
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
}

// HandleDomainError translates domain errors to API responses. Insufficient
// stock carries its availability numbers in the details payload so a client
// can show what is still sellable.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var stockErr *shared.InsufficientStockError
	if errors.As(err, &stockErr) {
		resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeInsufficientStock, stockErr.Error(), getRequestID(c))
		resp.Error.Details = gin.H{
			"product":   stockErr.Product,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.MapDomainErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Internal server error")
}
