package usecase

import (
	"context"
	"testing"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

func TestUpdateDutySuccess(t *testing.T) {
	name := "Dishes"

	accounts := &accountRepoMock{
		get: func(_ context.Context, filter port.AccountFilter, _ *port.Options) ([]domain.Account, error) {
			return []domain.Account{{ID: filter.ID}}, nil
		},
	}

	var lookupOpts *port.Options
	var applied domain.DutyPatch
	duties := &dutyRepoMock{
		get: func(_ context.Context, filter port.DutyFilter, opts *port.Options) ([]domain.Duty, error) {
			if filter.ID != "duty-1" {
				t.Fatalf("duty lookup id = %q", filter.ID)
			}
			lookupOpts = opts
			return []domain.Duty{{ID: "duty-1", AccountID: "account-1"}}, nil
		},
		update: func(_ context.Context, patch domain.DutyPatch, filter port.DutyFilter, _ *port.Options) (domain.Duty, error) {
			applied = patch
			return domain.Duty{ID: filter.ID, AccountID: *patch.AccountID, Name: *patch.Name}, nil
		},
	}

	feature := NewUpdateDuty(validation.New(), accounts, duties)

	duty, err := feature.Execute(context.Background(), UpdateDutyParams{
		ID:        "duty-1",
		AccountID: "account-1",
		Name:      &name,
	}, nil)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if lookupOpts == nil || !lookupOpts.ForUpdate {
		t.Fatalf("lookup opts = %+v, want row lock requested", lookupOpts)
	}
	if applied.AccountID == nil || *applied.AccountID != "account-1" {
		t.Fatalf("patch account id = %v", applied.AccountID)
	}
	if duty.Name != name {
		t.Fatalf("returned name %q, want %q", duty.Name, name)
	}
}

func TestUpdateDutyAccountMissing(t *testing.T) {
	accounts := &accountRepoMock{
		get: func(context.Context, port.AccountFilter, *port.Options) ([]domain.Account, error) {
			return nil, nil
		},
	}

	feature := NewUpdateDuty(validation.New(), accounts, &dutyRepoMock{})

	_, err := feature.Execute(context.Background(), UpdateDutyParams{ID: "duty-1", AccountID: "missing"}, nil)
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

func TestUpdateDutyNotFound(t *testing.T) {
	accounts := &accountRepoMock{
		get: func(_ context.Context, filter port.AccountFilter, _ *port.Options) ([]domain.Account, error) {
			return []domain.Account{{ID: filter.ID}}, nil
		},
	}
	duties := &dutyRepoMock{
		get: func(context.Context, port.DutyFilter, *port.Options) ([]domain.Duty, error) {
			return nil, nil
		},
	}

	feature := NewUpdateDuty(validation.New(), accounts, duties)

	_, err := feature.Execute(context.Background(), UpdateDutyParams{ID: "missing", AccountID: "account-1"}, nil)
	structured, ok := asStructuredError(err)
	if !ok {
		t.Fatalf("expected structured error, got %v", err)
	}
	if structured.Code != domain.CodeNoDataFound {
		t.Fatalf("code = %s, want %s", structured.Code, domain.CodeNoDataFound)
	}
	if structured.Message != "Duty record does not exist" {
		t.Fatalf("message = %q", structured.Message)
	}
}
