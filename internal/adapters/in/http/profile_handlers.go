package http

import (
	"net/http"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/application/usecases/queries"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetOwnProfile handles GET /api/v1/profile - returns the caller's profile.
func (s *Server) GetOwnProfile(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.getProfile(ctx, actor, actor.ID())
}

// UpdateOwnProfile handles PUT /api/v1/profile - replaces the caller's
// profile.
func (s *Server) UpdateOwnProfile(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.updateProfile(ctx, actor, actor.ID())
}

// GetAccountProfile handles GET /api/v1/accounts/:account_id/profile -
// returns an account's profile. The query handler restricts access to the
// account holder and administrators.
func (s *Server) GetAccountProfile(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	accountID, err := pathID(ctx, "account_id")
	if err != nil {
		return writeError(ctx, err)
	}

	return s.getProfile(ctx, actor, accountID)
}

// UpdateAccountProfile handles PUT /api/v1/accounts/:account_id/profile -
// replaces an account's profile. The command handler restricts access to the
// account holder and administrators.
func (s *Server) UpdateAccountProfile(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	accountID, err := pathID(ctx, "account_id")
	if err != nil {
		return writeError(ctx, err)
	}

	return s.updateProfile(ctx, actor, accountID)
}

func (s *Server) getProfile(ctx echo.Context, actor account.Actor, accountID kernel.UUID) error {
	query, err := queries.NewGetAccountProfileQuery(actor, accountID)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.getAccountProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

func (s *Server) updateProfile(ctx echo.Context, actor account.Actor, accountID kernel.UUID) error {
	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	var driverProfile *account.DriverProfile
	if req.DriverProfile != nil {
		driverProfile = &account.DriverProfile{
			Phone:          req.DriverProfile.Phone,
			LicenceNumber:  req.DriverProfile.LicenceNumber,
			VehicleType:    req.DriverProfile.VehicleType,
			LoadCapacityKg: req.DriverProfile.LoadCapacityKg,
		}
	}

	var ownerProfile *account.OwnerProfile
	if req.OwnerProfile != nil {
		ownerProfile = &account.OwnerProfile{
			CompanyName: req.OwnerProfile.CompanyName,
			GSTNumber:   req.OwnerProfile.GSTNumber,
			Phone:       req.OwnerProfile.Phone,
		}
	}

	cmd, err := commands.NewUpdateProfileCommand(actor, accountID, driverProfile, ownerProfile)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
