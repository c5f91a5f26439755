package http

import (
	"net/http"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/application/usecases/queries"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PostLoad handles POST /api/v1/loads - posts a new load for bidding.
func (s *Server) PostLoad(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req PostLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	details := load.Details{
		GoodsType:        req.GoodsType,
		WeightKg:         req.WeightKg,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		PickupDate:       req.PickupDate,
		DeliveryDate:     req.DeliveryDate,
		Description:      req.Description,
	}
	if req.ExpectedPrice != nil {
		price, priceErr := kernel.NewMoney(*req.ExpectedPrice)
		if priceErr != nil {
			return writeError(ctx, priceErr)
		}
		details.ExpectedPrice = &price
	}

	loadID := kernel.NewUUID()

	cmd, err := commands.NewPostLoadCommand(actor, loadID, details)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.postLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: loadID.String()})
}

// GetAvailableLoads handles GET /api/v1/loads/available - lists loads open
// for bidding.
func (s *Server) GetAvailableLoads(ctx echo.Context) error {
	query := queries.NewGetAvailableLoadsQuery()

	loads, err := s.getAvailableLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadResponses(loads))
}

// GetOwnerLoads handles GET /api/v1/loads/my - lists the caller's own loads.
func (s *Server) GetOwnerLoads(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOwnerLoadsQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	loads, err := s.getOwnerLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadResponses(loads))
}

// GetAssignedLoads handles GET /api/v1/loads/assigned - lists loads assigned
// to the calling driver.
func (s *Server) GetAssignedLoads(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAssignedLoadsQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	loads, err := s.getAssignedLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadResponses(loads))
}

// GetAllLoads handles GET /api/v1/loads - lists every load. Admin only.
func (s *Server) GetAllLoads(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !actor.Is(account.Admin) {
		return writeError(ctx, errs.NewForbiddenError("only admins can list all loads"))
	}

	query := queries.NewGetAllLoadsQuery()

	loads, err := s.getAllLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadResponses(loads))
}

// UpdateLoadStatus handles PATCH /api/v1/loads/:load_id/status - overwrites
// a load's status.
func (s *Server) UpdateLoadStatus(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := pathID(ctx, "load_id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateLoadStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	status, err := load.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateLoadStatusCommand(actor, loadID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateLoadStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HireDriver handles POST /api/v1/loads/:load_id/hire - offers the load to a
// bidding driver. Without a driver_id the cheapest pending bid is hired.
func (s *Server) HireDriver(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	loadID, err := pathID(ctx, "load_id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req HireDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	var driverID *kernel.UUID
	if req.DriverID != "" {
		id, idErr := bodyID("driver_id", req.DriverID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		driverID = &id
	}

	cmd, err := commands.NewHireDriverCommand(actor, loadID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.hireDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
