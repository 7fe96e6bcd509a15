// Package postgres implements the data store ports on PostgreSQL using pgx
// and squirrel. Constraint violations, missing rows, and unclassified driver
// failures are translated into the structured error taxonomy before they
// leave this package.
package postgres

import (
	"context"
	"errors"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
)

const (
	accountsTable = "accounts"
	dutiesTable   = "duties"

	uniqueViolationCode = "23505"
)

type pgExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// executor resolves the statement executor for one call: the transaction
// from the execution context when present, the pool otherwise.
func executor(exec pgExecutor, opts *port.Options) pgExecutor {
	if opts != nil && opts.Tx != nil {
		return opts.Tx
	}
	return exec
}

// applyReadOptions attaches sort/limit hints and the row-lock suffix to a
// select statement. FOR UPDATE is only meaningful inside a transaction.
func applyReadOptions(stmt squirrel.SelectBuilder, opts *port.Options) squirrel.SelectBuilder {
	if opts == nil {
		return stmt
	}
	if opts.Sort != nil && opts.Sort.Column != "" {
		order := string(opts.Sort.Order)
		if order == "" {
			order = string(port.SortAsc)
		}
		stmt = stmt.OrderBy(opts.Sort.Column + " " + order)
	}
	if opts.Limit > 0 {
		stmt = stmt.Limit(uint64(opts.Limit))
	}
	if opts.ForUpdate && opts.Tx != nil {
		stmt = stmt.Suffix("FOR UPDATE")
	}
	return stmt
}

// translateError maps driver failures onto the structured error taxonomy,
// preserving the low-level detail for diagnostics.
func translateError(err error, notFoundMessage string) error {
	var structured *domain.Error
	if errors.As(err, &structured) {
		return structured
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNoDataFoundError(notFoundMessage)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		message := pgErr.Detail
		if message == "" {
			message = pgErr.Message
		}
		detail := domain.Violation{Message: pgErr.Message, Key: pgErr.ConstraintName}
		if pgErr.Code == uniqueViolationCode {
			return domain.NewUniqueConstraintError(message, detail)
		}
		return domain.NewSomethingWentWrongError(message, detail)
	}

	return domain.NewSomethingWentWrongError(err.Error())
}
