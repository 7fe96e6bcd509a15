package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/usecase"
)

// DutyHandler serves the duty endpoints.
type DutyHandler struct {
	create usecase.Executor[usecase.CreateDutyParams, domain.Duty]
	update usecase.Executor[usecase.UpdateDutyParams, domain.Duty]
	delete usecase.Executor[usecase.DeleteDutyParams, domain.Duty]
	duties port.DutyRepository
}

// NewDutyHandler constructs the duty endpoints.
func NewDutyHandler(
	create usecase.Executor[usecase.CreateDutyParams, domain.Duty],
	update usecase.Executor[usecase.UpdateDutyParams, domain.Duty],
	delete usecase.Executor[usecase.DeleteDutyParams, domain.Duty],
	duties port.DutyRepository,
) *DutyHandler {
	return &DutyHandler{
		create: create,
		update: update,
		delete: delete,
		duties: duties,
	}
}

// Create handles POST /duties.
func (h *DutyHandler) Create(c *gin.Context) {
	var params usecase.CreateDutyParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	duty, err := h.create.Execute(c.Request.Context(), params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(duty))
}

// List handles GET /duties. The owning account is eagerly joined when the
// request asks for include=account.
func (h *DutyHandler) List(c *gin.Context) {
	filter := port.DutyFilter{
		ID:        c.Query("id"),
		AccountID: c.Query("account_id"),
		Name:      c.Query("name"),
	}

	opts := readOptions(c)
	if c.Query("include") == "account" {
		if opts == nil {
			opts = &port.Options{}
		}
		opts.IncludeAccount = true
	}

	duties, err := h.duties.Get(c.Request.Context(), filter, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(duties))
}

// Update handles PUT /duties/:id.
func (h *DutyHandler) Update(c *gin.Context) {
	var params usecase.UpdateDutyParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}
	params.ID = c.Param("id")

	duty, err := h.update.Execute(c.Request.Context(), params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(duty))
}

// Delete handles DELETE /duties/:id.
func (h *DutyHandler) Delete(c *gin.Context) {
	params := usecase.DeleteDutyParams{ID: c.Param("id")}

	duty, err := h.delete.Execute(c.Request.Context(), params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(duty))
}

// readOptions extracts sort/limit hints from the query string.
func readOptions(c *gin.Context) *port.Options {
	var opts *port.Options

	if column := c.Query("sort"); column != "" {
		order := port.SortOrder(c.DefaultQuery("order", string(port.SortAsc)))
		opts = &port.Options{Sort: &port.Sort{Column: column, Order: order}}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			if opts == nil {
				opts = &port.Options{}
			}
			opts.Limit = limit
		}
	}

	return opts
}
