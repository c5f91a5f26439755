package http

import (
	"net/http"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/application/usecases/queries"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetAllAccounts handles GET /api/v1/accounts - lists every registered
// account. Admin only.
func (s *Server) GetAllAccounts(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !actor.Is(account.Admin) {
		return writeError(ctx, errs.NewForbiddenError("only admins can list accounts"))
	}

	query := queries.NewGetAllAccountsQuery()

	accounts, err := s.getAllAccountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAccountResponses(accounts))
}

// RemoveAccount handles DELETE /api/v1/accounts/:account_id - removes an
// account and everything it owns. Authorization lives in the command handler.
func (s *Server) RemoveAccount(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	accountID, err := pathID(ctx, "account_id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveAccountCommand(actor, accountID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
