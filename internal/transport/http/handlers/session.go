package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/usecase"
)

// SessionHandler serves the login endpoint.
type SessionHandler struct {
	create usecase.Executor[usecase.CreateSessionParams, domain.Session]
}

// NewSessionHandler constructs the session endpoint.
func NewSessionHandler(create usecase.Executor[usecase.CreateSessionParams, domain.Session]) *SessionHandler {
	return &SessionHandler{create: create}
}

// Create handles POST /session.
func (h *SessionHandler) Create(c *gin.Context) {
	var params usecase.CreateSessionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	session, err := h.create.Execute(c.Request.Context(), params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(session))
}
