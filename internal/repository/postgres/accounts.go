package postgres

import (
	"context"
	"strings"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
)

var accountColumns = []string{
	"id",
	"first_name",
	"middle_name",
	"last_name",
	"contact_number",
	"email_address",
	"username",
	"password",
	"created_at",
	"updated_at",
}

// AccountRepository implements port.AccountRepository on PostgreSQL.
type AccountRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewAccountRepository constructs a repository backed by any executor that
// satisfies pgExecutor, usually a pgxpool.Pool.
func NewAccountRepository(exec pgExecutor) *AccountRepository {
	return &AccountRepository{
		exec:    exec,
		builder: newBuilder(),
	}
}

// Create inserts a new account row and returns it as persisted.
func (r *AccountRepository) Create(ctx context.Context, account domain.Account, opts *port.Options) (domain.Account, error) {
	stmt, args, err := r.builder.Insert(accountsTable).
		Columns(
			"id",
			"first_name",
			"middle_name",
			"last_name",
			"contact_number",
			"email_address",
			"username",
			"password",
		).
		Values(
			account.ID,
			account.FirstName,
			account.MiddleName,
			account.LastName,
			account.ContactNumber,
			account.EmailAddress,
			account.Username,
			account.Password,
		).
		Suffix("RETURNING " + strings.Join(accountColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Account{}, translateError(err, "account record not found")
	}

	row := executor(r.exec, opts).QueryRow(ctx, stmt, args...)
	created, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, translateError(err, "account record not found")
	}
	return created, nil
}

// Get returns the accounts matching the filter. An empty filter returns all
// rows; no match is an empty slice, not an error.
func (r *AccountRepository) Get(ctx context.Context, filter port.AccountFilter, opts *port.Options) ([]domain.Account, error) {
	stmt := r.builder.Select(accountColumns...).From(accountsTable)
	if cond := accountConditions(filter); len(cond) > 0 {
		stmt = stmt.Where(cond)
	}
	stmt = applyReadOptions(stmt, opts)

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, translateError(err, "account record not found")
	}

	rows, err := executor(r.exec, opts).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "account record not found")
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, translateError(err, "account record not found")
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "account record not found")
	}
	return accounts, nil
}

// Update applies the non-nil patch fields to the rows matching the filter,
// refreshes updated_at, and returns the post-update row.
func (r *AccountRepository) Update(ctx context.Context, patch domain.AccountPatch, filter port.AccountFilter, opts *port.Options) (domain.Account, error) {
	stmt := r.builder.Update(accountsTable).
		Set("updated_at", squirrel.Expr("now()"))

	if patch.FirstName != nil {
		stmt = stmt.Set("first_name", *patch.FirstName)
	}
	if patch.MiddleName != nil {
		stmt = stmt.Set("middle_name", *patch.MiddleName)
	}
	if patch.LastName != nil {
		stmt = stmt.Set("last_name", *patch.LastName)
	}
	if patch.ContactNumber != nil {
		stmt = stmt.Set("contact_number", *patch.ContactNumber)
	}
	if patch.EmailAddress != nil {
		stmt = stmt.Set("email_address", *patch.EmailAddress)
	}
	if patch.Username != nil {
		stmt = stmt.Set("username", *patch.Username)
	}
	if patch.Password != nil {
		stmt = stmt.Set("password", *patch.Password)
	}

	if cond := accountConditions(filter); len(cond) > 0 {
		stmt = stmt.Where(cond)
	}

	query, args, err := stmt.Suffix("RETURNING " + strings.Join(accountColumns, ", ")).ToSql()
	if err != nil {
		return domain.Account{}, translateError(err, "account record not found")
	}

	row := executor(r.exec, opts).QueryRow(ctx, query, args...)
	updated, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, translateError(err, "account record not found")
	}
	return updated, nil
}

// Delete removes the rows matching the filter and returns the deleted row's
// final state.
func (r *AccountRepository) Delete(ctx context.Context, filter port.AccountFilter, opts *port.Options) (domain.Account, error) {
	stmt := r.builder.Delete(accountsTable)
	if cond := accountConditions(filter); len(cond) > 0 {
		stmt = stmt.Where(cond)
	}

	query, args, err := stmt.Suffix("RETURNING " + strings.Join(accountColumns, ", ")).ToSql()
	if err != nil {
		return domain.Account{}, translateError(err, "account record not found")
	}

	row := executor(r.exec, opts).QueryRow(ctx, query, args...)
	deleted, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, translateError(err, "account record not found")
	}
	return deleted, nil
}

// accountConditions builds the where clause: id constrains on its own, the
// unique identity fields combine with OR.
func accountConditions(filter port.AccountFilter) squirrel.And {
	var cond squirrel.And
	if filter.ID != "" {
		cond = append(cond, squirrel.Eq{"id": filter.ID})
	}
	var identity squirrel.Or
	if filter.EmailAddress != "" {
		identity = append(identity, squirrel.Eq{"email_address": filter.EmailAddress})
	}
	if filter.Username != "" {
		identity = append(identity, squirrel.Eq{"username": filter.Username})
	}
	if len(identity) > 0 {
		cond = append(cond, identity)
	}
	return cond
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.FirstName,
		&account.MiddleName,
		&account.LastName,
		&account.ContactNumber,
		&account.EmailAddress,
		&account.Username,
		&account.Password,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	return account, err
}
