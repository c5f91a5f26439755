package http

import (
	"net/http"
	"strings"

	"lorrylink/internal/auth"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the authentication middleware stores the verified
// caller for downstream handlers.
const actorContextKey = "actor"

// AuthMiddleware verifies the bearer token on every request and stores the
// resulting actor in the echo context. Requests without a valid token are
// rejected with 401 before any handler runs.
func AuthMiddleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			actor, err := tokens.VerifyToken(strings.TrimPrefix(header, prefix))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromContext retrieves the actor stored by AuthMiddleware.
func actorFromContext(ctx echo.Context) (account.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(account.Actor)
	if !ok {
		return account.Actor{}, auth.ErrInvalidToken
	}
	return actor, nil
}

// pathID parses a UUID path parameter, reporting malformed values as client
// errors rather than internal ones.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// bodyID parses a UUID carried in a request body field.
func bodyID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
