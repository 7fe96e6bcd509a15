package usecase

import (
	"context"
	"time"

	"github.com/micahgtan/to-do-list/internal/core/domain"
	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// invalidCredentials deliberately does not reveal whether the username or
// the password was wrong.
const invalidCredentials = "Invalid username or password"

// CreateSessionParams is the schema for the login operation.
type CreateSessionParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateSession verifies credentials and issues a signed access/refresh
// token pair bound to the username.
type CreateSession struct {
	schema          *validation.Engine
	accounts        port.AccountRepository
	signer          port.TokenSigner
	hasher          port.PasswordHasher
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewCreateSession constructs the CreateSession feature operation.
func NewCreateSession(
	schema *validation.Engine,
	accounts port.AccountRepository,
	signer port.TokenSigner,
	hasher port.PasswordHasher,
	accessTokenTTL time.Duration,
	refreshTokenTTL time.Duration,
) *CreateSession {
	return &CreateSession{
		schema:          schema,
		accounts:        accounts,
		signer:          signer,
		hasher:          hasher,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// Execute runs the feature pipeline.
func (f *CreateSession) Execute(ctx context.Context, params CreateSessionParams, opts *port.Options) (domain.Session, error) {
	return execute(ctx, params, opts, f.schema, f.process)
}

func (f *CreateSession) process(ctx context.Context, params CreateSessionParams, opts *port.Options) (domain.Session, error) {
	accounts, err := f.accounts.Get(ctx, port.AccountFilter{Username: params.Username}, opts)
	if err != nil {
		return domain.Session{}, err
	}
	if len(accounts) == 0 {
		return domain.Session{}, domain.NewAuthenticationError(invalidCredentials)
	}
	account := accounts[0]

	ok, err := f.hasher.Compare(params.Password, account.Password)
	if err != nil {
		return domain.Session{}, domain.NewSomethingWentWrongError(err.Error())
	}
	if !ok {
		return domain.Session{}, domain.NewAuthenticationError(invalidCredentials)
	}

	claims := port.TokenClaims{Username: account.Username}

	accessToken, err := f.signer.Sign(claims, f.accessTokenTTL)
	if err != nil {
		return domain.Session{}, domain.NewSomethingWentWrongError(err.Error())
	}
	refreshToken, err := f.signer.Sign(claims, f.refreshTokenTTL)
	if err != nil {
		return domain.Session{}, domain.NewSomethingWentWrongError(err.Error())
	}

	return domain.Session{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  f.accessTokenTTL.String(),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: f.refreshTokenTTL.String(),
		TokenType:             domain.SessionTokenType,
	}, nil
}
