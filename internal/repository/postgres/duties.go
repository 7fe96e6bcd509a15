package postgres

import (
	"context"
	"strings"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
)

var dutyColumns = []string{
	"id",
	"account_id",
	"name",
	"created_at",
	"updated_at",
}

// DutyRepository implements port.DutyRepository on PostgreSQL.
type DutyRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewDutyRepository constructs a repository backed by any executor that
// satisfies pgExecutor.
func NewDutyRepository(exec pgExecutor) *DutyRepository {
	return &DutyRepository{
		exec:    exec,
		builder: newBuilder(),
	}
}

// Create inserts a new duty row and returns it as persisted.
func (r *DutyRepository) Create(ctx context.Context, duty domain.Duty, opts *port.Options) (domain.Duty, error) {
	stmt, args, err := r.builder.Insert(dutiesTable).
		Columns("id", "account_id", "name").
		Values(duty.ID, duty.AccountID, duty.Name).
		Suffix("RETURNING " + strings.Join(dutyColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Duty{}, translateError(err, "duty record not found")
	}

	row := executor(r.exec, opts).QueryRow(ctx, stmt, args...)
	created, err := scanDuty(row)
	if err != nil {
		return domain.Duty{}, translateError(err, "duty record not found")
	}
	return created, nil
}

// Get returns the duties matching the filter, optionally joined with the
// owning account when Options.IncludeAccount is set.
func (r *DutyRepository) Get(ctx context.Context, filter port.DutyFilter, opts *port.Options) ([]domain.Duty, error) {
	includeAccount := opts != nil && opts.IncludeAccount

	columns := prefixColumns(dutiesTable, dutyColumns)
	if includeAccount {
		columns = append(columns, prefixColumns(accountsTable, accountColumns)...)
	}

	stmt := r.builder.Select(columns...).From(dutiesTable)
	if includeAccount {
		stmt = stmt.Join(accountsTable + " ON " + accountsTable + ".id = " + dutiesTable + ".account_id")
	}
	if cond := dutyConditions(filter); len(cond) > 0 {
		stmt = stmt.Where(cond)
	}
	stmt = applyReadOptions(stmt, opts)

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, translateError(err, "duty record not found")
	}

	rows, err := executor(r.exec, opts).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "duty record not found")
	}
	defer rows.Close()

	var duties []domain.Duty
	for rows.Next() {
		var (
			duty domain.Duty
			err  error
		)
		if includeAccount {
			duty, err = scanDutyWithAccount(rows)
		} else {
			duty, err = scanDuty(rows)
		}
		if err != nil {
			return nil, translateError(err, "duty record not found")
		}
		duties = append(duties, duty)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "duty record not found")
	}
	return duties, nil
}

// Update applies the non-nil patch fields to the rows matching the filter,
// refreshes updated_at, and returns the post-update row.
func (r *DutyRepository) Update(ctx context.Context, patch domain.DutyPatch, filter port.DutyFilter, opts *port.Options) (domain.Duty, error) {
	stmt := r.builder.Update(dutiesTable).
		Set("updated_at", squirrel.Expr("now()"))

	if patch.AccountID != nil {
		stmt = stmt.Set("account_id", *patch.AccountID)
	}
	if patch.Name != nil {
		stmt = stmt.Set("name", *patch.Name)
	}

	if cond := dutyConditions(filter); len(cond) > 0 {
		stmt = stmt.Where(cond)
	}

	query, args, err := stmt.Suffix("RETURNING " + strings.Join(dutyColumns, ", ")).ToSql()
	if err != nil {
		return domain.Duty{}, translateError(err, "duty record not found")
	}

	row := executor(r.exec, opts).QueryRow(ctx, query, args...)
	updated, err := scanDuty(row)
	if err != nil {
		return domain.Duty{}, translateError(err, "duty record not found")
	}
	return updated, nil
}

// Delete removes the rows matching the filter and returns the deleted row's
// final state.
func (r *DutyRepository) Delete(ctx context.Context, filter port.DutyFilter, opts *port.Options) (domain.Duty, error) {
	stmt := r.builder.Delete(dutiesTable)
	if cond := dutyConditions(filter); len(cond) > 0 {
		stmt = stmt.Where(cond)
	}

	query, args, err := stmt.Suffix("RETURNING " + strings.Join(dutyColumns, ", ")).ToSql()
	if err != nil {
		return domain.Duty{}, translateError(err, "duty record not found")
	}

	row := executor(r.exec, opts).QueryRow(ctx, query, args...)
	deleted, err := scanDuty(row)
	if err != nil {
		return domain.Duty{}, translateError(err, "duty record not found")
	}
	return deleted, nil
}

func dutyConditions(filter port.DutyFilter) squirrel.And {
	var cond squirrel.And
	if filter.ID != "" {
		cond = append(cond, squirrel.Eq{dutiesTable + ".id": filter.ID})
	}
	if filter.AccountID != "" {
		cond = append(cond, squirrel.Eq{dutiesTable + ".account_id": filter.AccountID})
	}
	if filter.Name != "" {
		cond = append(cond, squirrel.Eq{dutiesTable + ".name": filter.Name})
	}
	return cond
}

func prefixColumns(table string, columns []string) []string {
	prefixed := make([]string, len(columns))
	for i, column := range columns {
		prefixed[i] = table + "." + column
	}
	return prefixed
}

func scanDuty(row pgx.Row) (domain.Duty, error) {
	var duty domain.Duty
	err := row.Scan(
		&duty.ID,
		&duty.AccountID,
		&duty.Name,
		&duty.CreatedAt,
		&duty.UpdatedAt,
	)
	return duty, err
}

func scanDutyWithAccount(row pgx.Row) (domain.Duty, error) {
	var (
		duty    domain.Duty
		account domain.Account
	)
	err := row.Scan(
		&duty.ID,
		&duty.AccountID,
		&duty.Name,
		&duty.CreatedAt,
		&duty.UpdatedAt,
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
	if err != nil {
		return domain.Duty{}, err
	}
	duty.Account = &account
	return duty, nil
}
