package usecase

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// CreateDutyParams is the schema for duty creation.
type CreateDutyParams struct {
	AccountID string `json:"account_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

// CreateDuty creates a duty for an existing account. The name pre-check is a
// fast path; the store's unique constraint remains authoritative.
type CreateDuty struct {
	schema   *validation.Engine
	accounts port.AccountRepository
	duties   port.DutyRepository
	ids      port.IDGenerator
}

// NewCreateDuty constructs the CreateDuty feature operation.
func NewCreateDuty(schema *validation.Engine, accounts port.AccountRepository, duties port.DutyRepository, ids port.IDGenerator) *CreateDuty {
	return &CreateDuty{
		schema:   schema,
		accounts: accounts,
		duties:   duties,
		ids:      ids,
	}
}

// Execute runs the feature pipeline.
func (f *CreateDuty) Execute(ctx context.Context, params CreateDutyParams, opts *port.Options) (domain.Duty, error) {
	return execute(ctx, params, opts, f.schema, f.process)
}

func (f *CreateDuty) process(ctx context.Context, params CreateDutyParams, opts *port.Options) (domain.Duty, error) {
	accounts, err := f.accounts.Get(ctx, port.AccountFilter{ID: params.AccountID}, opts)
	if err != nil {
		return domain.Duty{}, err
	}
	if len(accounts) == 0 {
		return domain.Duty{}, domain.NewNoDataFoundError("Account record does not exist")
	}

	duties, err := f.duties.Get(ctx, port.DutyFilter{Name: params.Name}, opts)
	if err != nil {
		return domain.Duty{}, err
	}
	if len(duties) > 0 {
		return domain.Duty{}, domain.NewUniqueConstraintError("Duty record already exists")
	}

	return f.duties.Create(ctx, domain.Duty{
		ID:        f.ids.Generate(),
		AccountID: params.AccountID,
		Name:      params.Name,
	}, opts)
}
