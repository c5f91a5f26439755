package http

import (
	"net/http"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/application/usecases/queries"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/dispute"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RaiseDispute handles POST /api/v1/disputes - opens a new dispute.
func (s *Server) RaiseDispute(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req RaiseDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	var loadID *kernel.UUID
	if req.LoadID != nil {
		id, idErr := bodyID("load_id", *req.LoadID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		loadID = &id
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		id, idErr := bodyID("driver_id", *req.DriverID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		driverID = &id
	}

	disputeID := kernel.NewUUID()

	cmd, err := commands.NewRaiseDisputeCommand(
		actor, disputeID, req.DisputeType, req.Message, loadID, driverID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.raiseDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: disputeID.String()})
}

// ResolveDispute handles POST /api/v1/disputes/:dispute_id/resolve - closes
// a dispute with a resolution.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	disputeID, err := pathID(ctx, "dispute_id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req ResolveDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	var status *dispute.Status
	if req.Status != nil {
		parsed, parseErr := dispute.ParseStatus(*req.Status)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewResolveDisputeCommand(actor, disputeID, req.Resolution, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserDisputes handles GET /api/v1/disputes/raised - lists disputes the
// caller raised.
func (s *Server) GetUserDisputes(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserDisputesQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	disputes, err := s.getUserDisputesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisputeResponses(disputes))
}

// GetOwnerDisputes handles GET /api/v1/disputes/owner - lists disputes
// touching the caller's loads.
func (s *Server) GetOwnerDisputes(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOwnerDisputesQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	disputes, err := s.getOwnerDisputesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisputeResponses(disputes))
}

// GetAllDisputes handles GET /api/v1/disputes - lists every dispute with the
// open backlog first. Admin only.
func (s *Server) GetAllDisputes(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !actor.Is(account.Admin) {
		return writeError(ctx, errs.NewForbiddenError("only admins can list all disputes"))
	}

	query := queries.NewGetAllDisputesQuery()

	disputes, err := s.getAllDisputesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisputeResponses(disputes))
}
