package http

import (
	"net/http"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/application/usecases/queries"
	"lorrylink/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// PlaceBid handles POST /api/v1/loads/:load_id/bids - places a bid on a load.
func (s *Server) PlaceBid(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := pathID(ctx, "load_id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req PlaceBidRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	bidID := kernel.NewUUID()

	cmd, err := commands.NewPlaceBidCommand(actor, bidID, loadID, amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.placeBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: bidID.String()})
}

// AcceptBid handles POST /api/v1/bids/:bid_id/accept - the hired driver
// confirms the job.
func (s *Server) AcceptBid(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	bidID, err := pathID(ctx, "bid_id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptBidCommand(actor, bidID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineBid handles POST /api/v1/bids/:bid_id/decline - the driver turns
// down a bid or a pending hire offer.
func (s *Server) DeclineBid(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	bidID, err := pathID(ctx, "bid_id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeclineBidCommand(actor, bidID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.declineBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBidsForLoad handles GET /api/v1/loads/:load_id/bids - lists bids on a
// load. Restricted to the load's owner and admins by the query itself.
func (s *Server) GetBidsForLoad(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := pathID(ctx, "load_id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBidsForLoadQuery(actor, loadID)
	if err != nil {
		return writeError(ctx, err)
	}

	bids, err := s.getBidsForLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBidResponses(bids))
}

// GetDriverBids handles GET /api/v1/bids/my - lists the caller's live bids.
func (s *Server) GetDriverBids(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverBidsQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	bids, err := s.getDriverBidsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBidResponses(bids))
}

// GetDriverBidHistory handles GET /api/v1/bids/history - lists every bid the
// caller ever placed.
func (s *Server) GetDriverBidHistory(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverBidHistoryQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	bids, err := s.getDriverBidHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBidResponses(bids))
}
