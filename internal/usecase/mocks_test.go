package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
)

type accountRepoMock struct {
	create func(ctx context.Context, account domain.Account, opts *port.Options) (domain.Account, error)
	get    func(ctx context.Context, filter port.AccountFilter, opts *port.Options) ([]domain.Account, error)
	update func(ctx context.Context, patch domain.AccountPatch, filter port.AccountFilter, opts *port.Options) (domain.Account, error)
	delete func(ctx context.Context, filter port.AccountFilter, opts *port.Options) (domain.Account, error)
}

func (m *accountRepoMock) Create(ctx context.Context, account domain.Account, opts *port.Options) (domain.Account, error) {
	if m.create == nil {
		return domain.Account{}, errors.New("unexpected call: Create account")
	}
	return m.create(ctx, account, opts)
}

func (m *accountRepoMock) Get(ctx context.Context, filter port.AccountFilter, opts *port.Options) ([]domain.Account, error) {
	if m.get == nil {
		return nil, errors.New("unexpected call: Get accounts")
	}
	return m.get(ctx, filter, opts)
}

func (m *accountRepoMock) Update(ctx context.Context, patch domain.AccountPatch, filter port.AccountFilter, opts *port.Options) (domain.Account, error) {
	if m.update == nil {
		return domain.Account{}, errors.New("unexpected call: Update account")
	}
	return m.update(ctx, patch, filter, opts)
}

func (m *accountRepoMock) Delete(ctx context.Context, filter port.AccountFilter, opts *port.Options) (domain.Account, error) {
	if m.delete == nil {
		return domain.Account{}, errors.New("unexpected call: Delete account")
	}
	return m.delete(ctx, filter, opts)
}

type dutyRepoMock struct {
	create func(ctx context.Context, duty domain.Duty, opts *port.Options) (domain.Duty, error)
	get    func(ctx context.Context, filter port.DutyFilter, opts *port.Options) ([]domain.Duty, error)
	update func(ctx context.Context, patch domain.DutyPatch, filter port.DutyFilter, opts *port.Options) (domain.Duty, error)
	delete func(ctx context.Context, filter port.DutyFilter, opts *port.Options) (domain.Duty, error)
}

func (m *dutyRepoMock) Create(ctx context.Context, duty domain.Duty, opts *port.Options) (domain.Duty, error) {
	if m.create == nil {
		return domain.Duty{}, errors.New("unexpected call: Create duty")
	}
	return m.create(ctx, duty, opts)
}

func (m *dutyRepoMock) Get(ctx context.Context, filter port.DutyFilter, opts *port.Options) ([]domain.Duty, error) {
	if m.get == nil {
		return nil, errors.New("unexpected call: Get duties")
	}
	return m.get(ctx, filter, opts)
}

func (m *dutyRepoMock) Update(ctx context.Context, patch domain.DutyPatch, filter port.DutyFilter, opts *port.Options) (domain.Duty, error) {
	if m.update == nil {
		return domain.Duty{}, errors.New("unexpected call: Update duty")
	}
	return m.update(ctx, patch, filter, opts)
}

func (m *dutyRepoMock) Delete(ctx context.Context, filter port.DutyFilter, opts *port.Options) (domain.Duty, error) {
	if m.delete == nil {
		return domain.Duty{}, errors.New("unexpected call: Delete duty")
	}
	return m.delete(ctx, filter, opts)
}

type hasherMock struct {
	hash    func(data string) (string, error)
	compare func(data, hash string) (bool, error)
}

func (m *hasherMock) Hash(data string) (string, error) {
	if m.hash == nil {
		return "", errors.New("unexpected call: Hash")
	}
	return m.hash(data)
}

func (m *hasherMock) Compare(data, hash string) (bool, error) {
	if m.compare == nil {
		return false, errors.New("unexpected call: Compare")
	}
	return m.compare(data, hash)
}

type signerMock struct {
	sign func(claims port.TokenClaims, expiresIn time.Duration) (string, error)
}

func (m *signerMock) Sign(claims port.TokenClaims, expiresIn time.Duration) (string, error) {
	if m.sign == nil {
		return "", errors.New("unexpected call: Sign")
	}
	return m.sign(claims, expiresIn)
}

func (m *signerMock) Verify(string) (port.TokenClaims, error) {
	return port.TokenClaims{}, errors.New("unexpected call: Verify")
}

type idGeneratorMock struct {
	id string
}

func (m *idGeneratorMock) Generate() string {
	return m.id
}

func asStructuredError(err error) (*domain.Error, bool) {
	var structured *domain.Error
	ok := errors.As(err, &structured)
	return structured, ok
}
