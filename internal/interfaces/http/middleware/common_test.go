package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})

	t.Run("propagates the client supplied ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "client-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-123", w.Header().Get("X-Request-ID"))
		assert.Contains(t, w.Body.String(), "client-id-123")
	})

	t.Run("generates an ID when none is supplied", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("generated IDs are unique", func(t *testing.T) {
		assert.NotEqual(t, generateRequestID(), generateRequestID())
	})
}
