package usecase

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// DeleteAccountParams is the schema for account deletion.
type DeleteAccountParams struct {
	ID string `json:"id" validate:"required"`
}

// DeleteAccount removes an account. Dependent duties cascade at the storage
// layer.
type DeleteAccount struct {
	schema   *validation.Engine
	accounts port.AccountRepository
}

// NewDeleteAccount constructs the DeleteAccount feature operation.
func NewDeleteAccount(schema *validation.Engine, accounts port.AccountRepository) *DeleteAccount {
	return &DeleteAccount{
		schema:   schema,
		accounts: accounts,
	}
}

// Execute runs the feature pipeline.
func (f *DeleteAccount) Execute(ctx context.Context, params DeleteAccountParams, opts *port.Options) (domain.Account, error) {
	return execute(ctx, params, opts, f.schema, f.process)
}

func (f *DeleteAccount) process(ctx context.Context, params DeleteAccountParams, opts *port.Options) (domain.Account, error) {
	existing, err := f.accounts.Get(ctx, port.AccountFilter{ID: params.ID}, opts)
	if err != nil {
		return domain.Account{}, err
	}
	if len(existing) == 0 {
		return domain.Account{}, domain.NewNoDataFoundError("Account record does not exist")
	}

	return f.accounts.Delete(ctx, port.AccountFilter{ID: params.ID}, opts)
}
