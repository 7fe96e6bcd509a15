package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
)

func accountRows(account domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumns).AddRow(
		account.ID,
		account.FirstName,
		account.MiddleName,
		account.LastName,
		account.ContactNumber,
		account.EmailAddress,
		account.Username,
		account.Password,
		account.CreatedAt,
		account.UpdatedAt,
	)
}

func testAccount() domain.Account {
	now := time.Now().UTC()
	return domain.Account{
		ID:            "account-1",
		FirstName:     "Micah",
		MiddleName:    "Gorospe",
		LastName:      "Tan",
		ContactNumber: "09123456789",
		EmailAddress:  "micah@example.com",
		Username:      "micahgtan",
		Password:      "hashed-password",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestAccountRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAccountRepository(mock)
	account := testAccount()

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(
			account.ID,
			account.FirstName,
			account.MiddleName,
			account.LastName,
			account.ContactNumber,
			account.EmailAddress,
			account.Username,
			account.Password,
		).
		WillReturnRows(accountRows(account))

	created, err := repo.Create(context.Background(), account, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != account.ID || created.Password != account.Password {
		t.Fatalf("created = %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepository_CreateUniqueViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAccountRepository(mock)
	account := testAccount()

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(
			account.ID,
			account.FirstName,
			account.MiddleName,
			account.LastName,
			account.ContactNumber,
			account.EmailAddress,
			account.Username,
			account.Password,
		).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "accounts_email_address_key"`,
			Detail:         "Key (email_address)=(micah@example.com) already exists.",
			ConstraintName: "accounts_email_address_key",
		})

	_, err = repo.Create(context.Background(), account, nil)

	var structured *domain.Error
	if !errors.As(err, &structured) {
		t.Fatalf("expected structured error, got %v", err)
	}
	if structured.Code != domain.CodeUniqueConstraint {
		t.Fatalf("code = %s, want %s", structured.Code, domain.CodeUniqueConstraint)
	}
	if structured.Message != "Key (email_address)=(micah@example.com) already exists." {
		t.Fatalf("message = %q", structured.Message)
	}
	if len(structured.Details) != 1 || structured.Details[0].Key != "accounts_email_address_key" {
		t.Fatalf("details = %+v", structured.Details)
	}
}

func TestAccountRepository_GetIdentityFilterUsesOr(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAccountRepository(mock)
	account := testAccount()

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE .*\(email_address = \$1 OR username = \$2\)`).
		WithArgs(account.EmailAddress, account.Username).
		WillReturnRows(accountRows(account))

	accounts, err := repo.Get(context.Background(), port.AccountFilter{
		EmailAddress: account.EmailAddress,
		Username:     account.Username,
	}, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != account.ID {
		t.Fatalf("accounts = %+v", accounts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepository_GetNoMatchIsEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAccountRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE \(id = \$1\)`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(accountColumns))

	accounts, err := repo.Get(context.Background(), port.AccountFilter{ID: "missing"}, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("accounts = %+v, want empty", accounts)
	}
}

func TestAccountRepository_UpdateSetsOnlyPatchedFields(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAccountRepository(mock)
	account := testAccount()
	firstName := "Updated"
	account.FirstName = firstName

	mock.ExpectQuery(`UPDATE accounts SET updated_at = now\(\), first_name = \$1 WHERE \(id = \$2\) RETURNING`).
		WithArgs(firstName, account.ID).
		WillReturnRows(accountRows(account))

	updated, err := repo.Update(context.Background(), domain.AccountPatch{FirstName: &firstName}, port.AccountFilter{ID: account.ID}, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != firstName {
		t.Fatalf("updated first name = %q", updated.FirstName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepository_UpdateMissingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAccountRepository(mock)
	firstName := "Updated"

	mock.ExpectQuery(`UPDATE accounts`).
		WithArgs(firstName, "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.Update(context.Background(), domain.AccountPatch{FirstName: &firstName}, port.AccountFilter{ID: "missing"}, nil)

	var structured *domain.Error
	if !errors.As(err, &structured) {
		t.Fatalf("expected structured error, got %v", err)
	}
	if structured.Code != domain.CodeNoDataFound {
		t.Fatalf("code = %s, want %s", structured.Code, domain.CodeNoDataFound)
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewAccountRepository(mock)
	account := testAccount()

	mock.ExpectQuery(`DELETE FROM accounts WHERE \(id = \$1\) RETURNING`).
		WithArgs(account.ID).
		WillReturnRows(accountRows(account))

	deleted, err := repo.Delete(context.Background(), port.AccountFilter{ID: account.ID}, nil)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != account.ID {
		t.Fatalf("deleted = %+v", deleted)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
