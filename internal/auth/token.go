package auth

import (
	"errors"
	"fmt"
	"time"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned when a presented token cannot be verified:
// bad signature, expired, malformed claims, or an unrecognized role.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies HS256-signed bearer tokens carrying the
// account identity and role as claims.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}

	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

// IssueToken signs a token for the given actor, valid for TokenTTL.
func (s *TokenService) IssueToken(actor account.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	claims := jwt.MapClaims{
		"account_id": actor.ID().String(),
		"role":       actor.Role().String(),
		"exp":        now.Add(TokenTTL).Unix(),
		"iat":        now.Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken validates a presented token and reconstructs the actor from
// its claims. Any verification failure maps to ErrInvalidToken so callers
// cannot distinguish a forged token from an expired one.
func (s *TokenService) VerifyToken(tokenString string) (account.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return account.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return account.Actor{}, ErrInvalidToken
	}

	rawID, ok := claims["account_id"].(string)
	if !ok {
		return account.Actor{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return account.Actor{}, ErrInvalidToken
	}

	rawRole, ok := claims["role"].(string)
	if !ok {
		return account.Actor{}, ErrInvalidToken
	}

	role, err := account.ParseRole(rawRole)
	if err != nil {
		return account.Actor{}, ErrInvalidToken
	}

	actor, err := account.NewActor(id, role)
	if err != nil {
		return account.Actor{}, ErrInvalidToken
	}

	return actor, nil
}
