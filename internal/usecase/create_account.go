package usecase

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// CreateAccountParams is the schema for account registration.
type CreateAccountParams struct {
	FirstName     string `json:"first_name" validate:"required"`
	MiddleName    string `json:"middle_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required,len=11"`
	EmailAddress  string `json:"email_address" validate:"required,email"`
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

// CreateAccount registers a new account with a hashed password and a fresh
// opaque identifier.
type CreateAccount struct {
	schema   *validation.Engine
	accounts port.AccountRepository
	hasher   port.PasswordHasher
	ids      port.IDGenerator
}

// NewCreateAccount constructs the CreateAccount feature operation.
func NewCreateAccount(schema *validation.Engine, accounts port.AccountRepository, hasher port.PasswordHasher, ids port.IDGenerator) *CreateAccount {
	return &CreateAccount{
		schema:   schema,
		accounts: accounts,
		hasher:   hasher,
		ids:      ids,
	}
}

// Execute runs the feature pipeline.
func (f *CreateAccount) Execute(ctx context.Context, params CreateAccountParams, opts *port.Options) (domain.Account, error) {
	return execute(ctx, params, opts, f.schema, f.process)
}

func (f *CreateAccount) process(ctx context.Context, params CreateAccountParams, opts *port.Options) (domain.Account, error) {
	existing, err := f.accounts.Get(ctx, port.AccountFilter{
		EmailAddress: params.EmailAddress,
		Username:     params.Username,
	}, opts)
	if err != nil {
		return domain.Account{}, err
	}
	if len(existing) > 0 {
		return domain.Account{}, domain.NewUniqueConstraintError("Account record already exists")
	}

	hashed, err := f.hasher.Hash(params.Password)
	if err != nil {
		return domain.Account{}, domain.NewSomethingWentWrongError(err.Error())
	}

	return f.accounts.Create(ctx, domain.Account{
		ID:            f.ids.Generate(),
		FirstName:     params.FirstName,
		MiddleName:    params.MiddleName,
		LastName:      params.LastName,
		ContactNumber: params.ContactNumber,
		EmailAddress:  params.EmailAddress,
		Username:      params.Username,
		Password:      hashed,
	}, opts)
}
