package port

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
)

// DutyFilter narrows duty lookups. Set fields combine with AND.
type DutyFilter struct {
	ID        string
	AccountID string
	Name      string
}

// DutyRepository exposes persistence behavior for duties. Get eagerly joins
// the owning account when Options.IncludeAccount is set.
type DutyRepository interface {
	Create(ctx context.Context, duty domain.Duty, opts *Options) (domain.Duty, error)
	Get(ctx context.Context, filter DutyFilter, opts *Options) ([]domain.Duty, error)
	Update(ctx context.Context, patch domain.DutyPatch, filter DutyFilter, opts *Options) (domain.Duty, error)
	Delete(ctx context.Context, filter DutyFilter, opts *Options) (domain.Duty, error)
}
