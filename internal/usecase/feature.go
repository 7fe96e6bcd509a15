// Package usecase implements the feature operations: one validate → sanitize
// → process pipeline per use case, composed from the data store ports and
// credential services by constructor injection.
package usecase

import (
	"context"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// Executor is the uniform contract transport adapters invoke. Every feature
// operation satisfies it for its own parameter and result types.
type Executor[P, R any] interface {
	Execute(ctx context.Context, params P, opts *port.Options) (R, error)
}

// execute runs the pipeline shared by every feature operation: schema
// validation in all-errors mode, the sanitize seam, then the
// operation-specific business logic.
func execute[P, R any](
	ctx context.Context,
	params P,
	opts *port.Options,
	schema *validation.Engine,
	process func(context.Context, P, *port.Options) (R, error),
) (R, error) {
	if violations := schema.Check(params); len(violations) > 0 {
		var zero R
		return zero, domain.NewValidationError(violations)
	}
	return process(ctx, sanitize(params), opts)
}

// sanitize normalizes parameters after validation. Identity for the current
// operations; the seam is where input normalization belongs.
func sanitize[P any](params P) P {
	return params
}

// lockForUpdate copies opts with the row-lock flag set, so the lookup
// preceding a mutation holds the row against concurrent deletes.
func lockForUpdate(opts *port.Options) *port.Options {
	locked := port.Options{}
	if opts != nil {
		locked = *opts
	}
	locked.ForUpdate = true
	return &locked
}
