package event

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/usecase"
)

// Handler is one independently invocable request handler.
type Handler func(ctx context.Context, evt Event) Response

// TxBeginner starts the transaction each write handler wraps its feature
// call in. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CreateAccount handles the create-account event inside a transaction.
func CreateAccount(feature usecase.Executor[usecase.CreateAccountParams, domain.Account], db TxBeginner) Handler {
	return func(ctx context.Context, evt Event) Response {
		var params usecase.CreateAccountParams
		if err := json.Unmarshal([]byte(evt.Body), &params); err != nil {
			return respondFailure(domain.NewSomethingWentWrongError(err.Error()))
		}

		return inTransaction(ctx, db, func(opts *port.Options) (any, error) {
			return feature.Execute(ctx, params, opts)
		})
	}
}

// UpdateAccount handles the update-account event inside a transaction. The
// target id comes from the path parameters, the patch from the body.
func UpdateAccount(feature usecase.Executor[usecase.UpdateAccountParams, domain.Account], db TxBeginner) Handler {
	return func(ctx context.Context, evt Event) Response {
		var params usecase.UpdateAccountParams
		if err := json.Unmarshal([]byte(evt.Body), &params); err != nil {
			return respondFailure(domain.NewSomethingWentWrongError(err.Error()))
		}
		params.ID = evt.PathParameters["id"]

		return inTransaction(ctx, db, func(opts *port.Options) (any, error) {
			return feature.Execute(ctx, params, opts)
		})
	}
}

// DeleteAccount handles the delete-account event inside a transaction.
func DeleteAccount(feature usecase.Executor[usecase.DeleteAccountParams, domain.Account], db TxBeginner) Handler {
	return func(ctx context.Context, evt Event) Response {
		params := usecase.DeleteAccountParams{ID: evt.PathParameters["id"]}

		return inTransaction(ctx, db, func(opts *port.Options) (any, error) {
			return feature.Execute(ctx, params, opts)
		})
	}
}

// CreateSession handles the create-session event. No transaction: the
// operation only reads and signs.
func CreateSession(feature usecase.Executor[usecase.CreateSessionParams, domain.Session]) Handler {
	return func(ctx context.Context, evt Event) Response {
		var params usecase.CreateSessionParams
		if err := json.Unmarshal([]byte(evt.Body), &params); err != nil {
			return respondFailure(domain.NewSomethingWentWrongError(err.Error()))
		}

		session, err := feature.Execute(ctx, params, nil)
		if err != nil {
			return respondFailure(err)
		}
		return respondSuccess(session)
	}
}

// GetAccounts handles the get-accounts event with a direct store read.
func GetAccounts(accounts port.AccountRepository) Handler {
	return func(ctx context.Context, evt Event) Response {
		filter := port.AccountFilter{
			ID:           evt.QueryStringParameters["id"],
			EmailAddress: evt.QueryStringParameters["email_address"],
			Username:     evt.QueryStringParameters["username"],
		}

		records, err := accounts.Get(ctx, filter, nil)
		if err != nil {
			return respondFailure(err)
		}
		return respondSuccess(records)
	}
}

// inTransaction runs one feature call inside a fresh transaction, rolling
// back on failure and committing on success.
func inTransaction(ctx context.Context, db TxBeginner, run func(opts *port.Options) (any, error)) Response {
	tx, err := db.Begin(ctx)
	if err != nil {
		return respondFailure(domain.NewSomethingWentWrongError(err.Error()))
	}

	result, err := run(&port.Options{Tx: tx})
	if err != nil {
		_ = tx.Rollback(ctx)
		return respondFailure(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return respondFailure(domain.NewSomethingWentWrongError(err.Error()))
	}
	return respondSuccess(result)
}
