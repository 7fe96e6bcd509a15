package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/usecase"
)

// AccountHandler serves the account endpoints. Writes go through the feature
// operations; the list endpoint reads the store directly.
type AccountHandler struct {
	create   usecase.Executor[usecase.CreateAccountParams, domain.Account]
	update   usecase.Executor[usecase.UpdateAccountParams, domain.Account]
	delete   usecase.Executor[usecase.DeleteAccountParams, domain.Account]
	accounts port.AccountRepository
}

// NewAccountHandler constructs the account endpoints.
func NewAccountHandler(
	create usecase.Executor[usecase.CreateAccountParams, domain.Account],
	update usecase.Executor[usecase.UpdateAccountParams, domain.Account],
	delete usecase.Executor[usecase.DeleteAccountParams, domain.Account],
	accounts port.AccountRepository,
) *AccountHandler {
	return &AccountHandler{
		create:   create,
		update:   update,
		delete:   delete,
		accounts: accounts,
	}
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var params usecase.CreateAccountParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	account, err := h.create.Execute(c.Request.Context(), params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(account))
}

// List handles GET /accounts.
func (h *AccountHandler) List(c *gin.Context) {
	filter := port.AccountFilter{
		ID:           c.Query("id"),
		EmailAddress: c.Query("email_address"),
		Username:     c.Query("username"),
	}

	accounts, err := h.accounts.Get(c.Request.Context(), filter, readOptions(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(accounts))
}

// Update handles PUT /accounts/:id.
func (h *AccountHandler) Update(c *gin.Context) {
	var params usecase.UpdateAccountParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}
	params.ID = c.Param("id")

	account, err := h.update.Execute(c.Request.Context(), params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(account))
}

// Delete handles DELETE /accounts/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	params := usecase.DeleteAccountParams{ID: c.Param("id")}

	account, err := h.delete.Execute(c.Request.Context(), params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(account))
}
