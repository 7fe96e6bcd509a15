package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the root greeting endpoint.
type HealthHandler struct {
	greeting string
}

// NewHealthHandler constructs the health endpoint with the configured
// greeting message.
func NewHealthHandler(greeting string) *HealthHandler {
	return &HealthHandler{greeting: greeting}
}

// Greet handles GET /.
func (h *HealthHandler) Greet(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(GreetingResponse{Message: h.greeting}))
}
