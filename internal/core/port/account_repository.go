package port

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
)

// AccountFilter narrows account lookups. ID constrains on its own;
// EmailAddress and Username combine with OR so a single lookup covers both
// unique identities.
type AccountFilter struct {
	ID           string
	EmailAddress string
	Username     string
}

// AccountRepository exposes persistence behavior for accounts. Store-level
// constraint violations surface as UniqueConstraintError, missing rows on
// mutation paths as NoDataFoundError, anything else as
// SomethingWentWrongError.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account, opts *Options) (domain.Account, error)
	Get(ctx context.Context, filter AccountFilter, opts *Options) ([]domain.Account, error)
	Update(ctx context.Context, patch domain.AccountPatch, filter AccountFilter, opts *Options) (domain.Account, error)
	Delete(ctx context.Context, filter AccountFilter, opts *Options) (domain.Account, error)
}
