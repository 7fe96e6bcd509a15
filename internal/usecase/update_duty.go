package usecase

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// UpdateDutyParams is the schema for a partial duty update.
type UpdateDutyParams struct {
	ID        string  `json:"id" validate:"required"`
	AccountID string  `json:"account_id" validate:"required"`
	Name      *string `json:"name"`
}

// UpdateDuty applies a partial update to an existing duty after verifying
// both the owning account and the duty itself exist.
type UpdateDuty struct {
	schema   *validation.Engine
	accounts port.AccountRepository
	duties   port.DutyRepository
}

// NewUpdateDuty constructs the UpdateDuty feature operation.
func NewUpdateDuty(schema *validation.Engine, accounts port.AccountRepository, duties port.DutyRepository) *UpdateDuty {
	return &UpdateDuty{
		schema:   schema,
		accounts: accounts,
		duties:   duties,
	}
}

// Execute runs the feature pipeline.
func (f *UpdateDuty) Execute(ctx context.Context, params UpdateDutyParams, opts *port.Options) (domain.Duty, error) {
	return execute(ctx, params, opts, f.schema, f.process)
}

func (f *UpdateDuty) process(ctx context.Context, params UpdateDutyParams, opts *port.Options) (domain.Duty, error) {
	accounts, err := f.accounts.Get(ctx, port.AccountFilter{ID: params.AccountID}, opts)
	if err != nil {
		return domain.Duty{}, err
	}
	if len(accounts) == 0 {
		return domain.Duty{}, domain.NewNoDataFoundError("Account record does not exist")
	}

	duties, err := f.duties.Get(ctx, port.DutyFilter{ID: params.ID}, lockForUpdate(opts))
	if err != nil {
		return domain.Duty{}, err
	}
	if len(duties) == 0 {
		return domain.Duty{}, domain.NewNoDataFoundError("Duty record does not exist")
	}

	patch := domain.DutyPatch{
		AccountID: &params.AccountID,
		Name:      params.Name,
	}

	return f.duties.Update(ctx, patch, port.DutyFilter{ID: params.ID}, opts)
}
