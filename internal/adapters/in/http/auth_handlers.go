package http

import (
	"net/http"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/auth/register - creates a new account.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return writeError(ctx, err)
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

	accountID := kernel.NewUUID()

	cmd, err := commands.NewRegisterAccountCommand(
		accountID, req.Username, req.Email, req.Password, role,
		driverProfile, ownerProfile,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: accountID.String()})
}

// Login handles POST /api/v1/auth/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	token, err := s.login.Login(ctx.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// SendCode handles POST /api/v1/auth/otp/send - issues a verification code.
func (s *Server) SendCode(ctx echo.Context) error {
	var req SendCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	code, err := s.otp.SendCode(req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SendCodeResponse{Code: code})
}

// VerifyCode handles POST /api/v1/auth/otp/verify - checks a verification code.
func (s *Server) VerifyCode(ctx echo.Context) error {
	var req VerifyCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	if err := s.otp.VerifyCode(req.Email, req.Code); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePassword handles POST /api/v1/auth/change-password - rotates the
// caller's password after re-verifying the old one.
func (s *Server) ChangePassword(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewChangePasswordCommand(actor, req.OldPassword, req.NewPassword)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changePasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
