package usecase

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// UpdateAccountParams is the schema for a partial account update. Every
// field except the identifier is optional.
type UpdateAccountParams struct {
	ID            string  `json:"id" validate:"required"`
	FirstName     *string `json:"first_name"`
	MiddleName    *string `json:"middle_name"`
	LastName      *string `json:"last_name"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,len=11"`
	EmailAddress  *string `json:"email_address" validate:"omitempty,email"`
	Username      *string `json:"username"`
	Password      *string `json:"password"`
}

// UpdateAccount applies a partial update to an existing account, re-hashing
// the password when one is supplied.
type UpdateAccount struct {
	schema   *validation.Engine
	accounts port.AccountRepository
	hasher   port.PasswordHasher
}

// NewUpdateAccount constructs the UpdateAccount feature operation.
func NewUpdateAccount(schema *validation.Engine, accounts port.AccountRepository, hasher port.PasswordHasher) *UpdateAccount {
	return &UpdateAccount{
		schema:   schema,
		accounts: accounts,
		hasher:   hasher,
	}
}

// Execute runs the feature pipeline.
func (f *UpdateAccount) Execute(ctx context.Context, params UpdateAccountParams, opts *port.Options) (domain.Account, error) {
	return execute(ctx, params, opts, f.schema, f.process)
}

func (f *UpdateAccount) process(ctx context.Context, params UpdateAccountParams, opts *port.Options) (domain.Account, error) {
	existing, err := f.accounts.Get(ctx, port.AccountFilter{ID: params.ID}, lockForUpdate(opts))
	if err != nil {
		return domain.Account{}, err
	}
	if len(existing) == 0 {
		return domain.Account{}, domain.NewNoDataFoundError("Account record does not exist")
	}

	patch := domain.AccountPatch{
		FirstName:     params.FirstName,
		MiddleName:    params.MiddleName,
		LastName:      params.LastName,
		ContactNumber: params.ContactNumber,
		EmailAddress:  params.EmailAddress,
		Username:      params.Username,
	}
	if params.Password != nil {
		hashed, err := f.hasher.Hash(*params.Password)
		if err != nil {
			return domain.Account{}, domain.NewSomethingWentWrongError(err.Error())
		}
		patch.Password = &hashed
	}

	return f.accounts.Update(ctx, patch, port.AccountFilter{ID: params.ID}, opts)
}
