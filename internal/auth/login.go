package auth

import (
	"context"
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/pkg/errs"
)

// ErrInvalidCredentials signals a wrong username/email or password. Lookup
// misses and password mismatches collapse into this one error so login
// responses never reveal which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountFinder is the account lookup surface login needs.
type AccountFinder interface {
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// LoginService authenticates accounts and issues bearer tokens.
type LoginService struct {
	accounts AccountFinder
	hasher   BcryptHasher
	tokens   *TokenService
}

// NewLoginService creates a login service over the given account lookup.
func NewLoginService(accounts AccountFinder, tokens *TokenService) (*LoginService, error) {
	if accounts == nil {
		return nil, errs.NewValueIsRequiredError("accounts")
	}
	if tokens == nil {
		return nil, errs.NewValueIsRequiredError("tokens")
	}

	return &LoginService{
		accounts: accounts,
		hasher:   NewBcryptHasher(),
		tokens:   tokens,
	}, nil
}

// Login resolves the identifier as a username first and an email second,
// verifies the password, and returns a signed token for the account.
// Deactivated accounts cannot log in.
func (s *LoginService) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	if usernameOrEmail == "" {
		return "", errs.NewValueIsRequiredError("usernameOrEmail")
	}
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	acc, err := s.accounts.GetByUsername(ctx, usernameOrEmail)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return "", err
		}

		acc, err = s.accounts.GetByEmail(ctx, usernameOrEmail)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return "", ErrInvalidCredentials
			}
			return "", err
		}
	}

	if !acc.IsActive() {
		return "", ErrInvalidCredentials
	}

	if err = s.hasher.Compare(acc.PasswordHash(), password); err != nil {
		return "", ErrInvalidCredentials
	}

	actor, err := acc.Actor()
	if err != nil {
		return "", err
	}

	return s.tokens.IssueToken(actor)
}
