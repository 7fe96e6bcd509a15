package usecase

import (
	"context"
	"testing"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

func TestDeleteAccountSuccess(t *testing.T) {
	accounts := &accountRepoMock{
		get: func(_ context.Context, filter port.AccountFilter, _ *port.Options) ([]domain.Account, error) {
			return []domain.Account{{ID: filter.ID}}, nil
		},
		delete: func(_ context.Context, filter port.AccountFilter, _ *port.Options) (domain.Account, error) {
			return domain.Account{ID: filter.ID}, nil
		},
	}

	feature := NewDeleteAccount(validation.New(), accounts)

	account, err := feature.Execute(context.Background(), DeleteAccountParams{ID: "account-1"}, nil)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if account.ID != "account-1" {
		t.Fatalf("deleted id = %q, want account-1", account.ID)
	}
}

func TestDeleteAccountNotFound(t *testing.T) {
	accounts := &accountRepoMock{
		get: func(context.Context, port.AccountFilter, *port.Options) ([]domain.Account, error) {
			return nil, nil
		},
	}

	feature := NewDeleteAccount(validation.New(), accounts)

	_, err := feature.Execute(context.Background(), DeleteAccountParams{ID: "missing"}, nil)
	structured, ok := asStructuredError(err)
	if !ok {
		t.Fatalf("expected structured error, got %v", err)
	}
	if structured.Code != domain.CodeNoDataFound {
		t.Fatalf("code = %s, want %s", structured.Code, domain.CodeNoDataFound)
	}
	if structured.Message != "Account record does not exist" {
		t.Fatalf("message = %q", structured.Message)
	}
}

func TestDeleteAccountRequiresID(t *testing.T) {
	feature := NewDeleteAccount(validation.New(), &accountRepoMock{})

	_, err := feature.Execute(context.Background(), DeleteAccountParams{}, nil)
	structured, ok := asStructuredError(err)
	if !ok {
		t.Fatalf("expected structured error, got %v", err)
	}
	if structured.Code != domain.CodeValidation {
		t.Fatalf("code = %s, want %s", structured.Code, domain.CodeValidation)
	}
}
