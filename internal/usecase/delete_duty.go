package usecase

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// DeleteDutyParams is the schema for duty deletion.
type DeleteDutyParams struct {
	ID string `json:"id" validate:"required"`
}

// DeleteDuty removes a duty. The duty's own account_id is the source of
// truth for the ownership check: the duty is loaded first and its owner
// verified before the delete.
type DeleteDuty struct {
	schema   *validation.Engine
	accounts port.AccountRepository
	duties   port.DutyRepository
}

// NewDeleteDuty constructs the DeleteDuty feature operation.
func NewDeleteDuty(schema *validation.Engine, accounts port.AccountRepository, duties port.DutyRepository) *DeleteDuty {
	return &DeleteDuty{
		schema:   schema,
		accounts: accounts,
		duties:   duties,
	}
}

// Execute runs the feature pipeline.
func (f *DeleteDuty) Execute(ctx context.Context, params DeleteDutyParams, opts *port.Options) (domain.Duty, error) {
	return execute(ctx, params, opts, f.schema, f.process)
}

func (f *DeleteDuty) process(ctx context.Context, params DeleteDutyParams, opts *port.Options) (domain.Duty, error) {
	duties, err := f.duties.Get(ctx, port.DutyFilter{ID: params.ID}, opts)
	if err != nil {
		return domain.Duty{}, err
	}
	if len(duties) == 0 {
		return domain.Duty{}, domain.NewNoDataFoundError("Duty record does not exist")
	}

	accounts, err := f.accounts.Get(ctx, port.AccountFilter{ID: duties[0].AccountID}, opts)
	if err != nil {
		return domain.Duty{}, err
	}
	if len(accounts) == 0 {
		return domain.Duty{}, domain.NewNoDataFoundError("Account record does not exist")
	}

	return f.duties.Delete(ctx, port.DutyFilter{ID: params.ID}, opts)
}
