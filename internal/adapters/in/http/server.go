// Package http exposes the marketplace over a JSON REST API.
// It coordinates between HTTP handlers and application use cases; all
// business rules live in the core, this package only translates requests
// into commands and queries and errors into status codes.
package http

import (
	"lorrylink/internal/auth"
	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind every route.
type Server struct {
	// Command handlers
	registerAccountHandler  commands.RegisterAccountCommandHandler
	changePasswordHandler   commands.ChangePasswordCommandHandler
	updateProfileHandler    commands.UpdateProfileCommandHandler
	removeAccountHandler    commands.RemoveAccountCommandHandler
	postLoadHandler         commands.PostLoadCommandHandler
	updateLoadStatusHandler commands.UpdateLoadStatusCommandHandler
	placeBidHandler         commands.PlaceBidCommandHandler
	hireDriverHandler       commands.HireDriverCommandHandler
	acceptBidHandler        commands.AcceptBidCommandHandler
	declineBidHandler       commands.DeclineBidCommandHandler
	raiseDisputeHandler     commands.RaiseDisputeCommandHandler
	resolveDisputeHandler   commands.ResolveDisputeCommandHandler

	// Query handlers
	getAvailableLoadsHandler   queries.GetAvailableLoadsQueryHandler
	getOwnerLoadsHandler       queries.GetOwnerLoadsQueryHandler
	getAssignedLoadsHandler    queries.GetAssignedLoadsQueryHandler
	getAllLoadsHandler         queries.GetAllLoadsQueryHandler
	getBidsForLoadHandler      queries.GetBidsForLoadQueryHandler
	getDriverBidsHandler       queries.GetDriverBidsQueryHandler
	getDriverBidHistoryHandler queries.GetDriverBidHistoryQueryHandler
	getUserDisputesHandler     queries.GetUserDisputesQueryHandler
	getOwnerDisputesHandler    queries.GetOwnerDisputesQueryHandler
	getAllDisputesHandler      queries.GetAllDisputesQueryHandler
	getAllAccountsHandler      queries.GetAllAccountsQueryHandler
	getAccountProfileHandler   queries.GetAccountProfileQueryHandler

	// Auth services
	login  *auth.LoginService
	tokens *auth.TokenService
	otp    *auth.OTPService
}

// ServerDeps bundles everything a Server needs. All fields are required.
type ServerDeps struct {
	RegisterAccountHandler  commands.RegisterAccountCommandHandler
	ChangePasswordHandler   commands.ChangePasswordCommandHandler
	UpdateProfileHandler    commands.UpdateProfileCommandHandler
	RemoveAccountHandler    commands.RemoveAccountCommandHandler
	PostLoadHandler         commands.PostLoadCommandHandler
	UpdateLoadStatusHandler commands.UpdateLoadStatusCommandHandler
	PlaceBidHandler         commands.PlaceBidCommandHandler
	HireDriverHandler       commands.HireDriverCommandHandler
	AcceptBidHandler        commands.AcceptBidCommandHandler
	DeclineBidHandler       commands.DeclineBidCommandHandler
	RaiseDisputeHandler     commands.RaiseDisputeCommandHandler
	ResolveDisputeHandler   commands.ResolveDisputeCommandHandler

	GetAvailableLoadsHandler   queries.GetAvailableLoadsQueryHandler
	GetOwnerLoadsHandler       queries.GetOwnerLoadsQueryHandler
	GetAssignedLoadsHandler    queries.GetAssignedLoadsQueryHandler
	GetAllLoadsHandler         queries.GetAllLoadsQueryHandler
	GetBidsForLoadHandler      queries.GetBidsForLoadQueryHandler
	GetDriverBidsHandler       queries.GetDriverBidsQueryHandler
	GetDriverBidHistoryHandler queries.GetDriverBidHistoryQueryHandler
	GetUserDisputesHandler     queries.GetUserDisputesQueryHandler
	GetOwnerDisputesHandler    queries.GetOwnerDisputesQueryHandler
	GetAllDisputesHandler      queries.GetAllDisputesQueryHandler
	GetAllAccountsHandler      queries.GetAllAccountsQueryHandler
	GetAccountProfileHandler   queries.GetAccountProfileQueryHandler

	LoginService *auth.LoginService
	TokenService *auth.TokenService
	OTPService   *auth.OTPService
}

// NewServer creates a new HTTP server with the required command and query
// handlers and auth services.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		registerAccountHandler:  deps.RegisterAccountHandler,
		changePasswordHandler:   deps.ChangePasswordHandler,
		updateProfileHandler:    deps.UpdateProfileHandler,
		removeAccountHandler:    deps.RemoveAccountHandler,
		postLoadHandler:         deps.PostLoadHandler,
		updateLoadStatusHandler: deps.UpdateLoadStatusHandler,
		placeBidHandler:         deps.PlaceBidHandler,
		hireDriverHandler:       deps.HireDriverHandler,
		acceptBidHandler:        deps.AcceptBidHandler,
		declineBidHandler:       deps.DeclineBidHandler,
		raiseDisputeHandler:     deps.RaiseDisputeHandler,
		resolveDisputeHandler:   deps.ResolveDisputeHandler,

		getAvailableLoadsHandler:   deps.GetAvailableLoadsHandler,
		getOwnerLoadsHandler:       deps.GetOwnerLoadsHandler,
		getAssignedLoadsHandler:    deps.GetAssignedLoadsHandler,
		getAllLoadsHandler:         deps.GetAllLoadsHandler,
		getBidsForLoadHandler:      deps.GetBidsForLoadHandler,
		getDriverBidsHandler:       deps.GetDriverBidsHandler,
		getDriverBidHistoryHandler: deps.GetDriverBidHistoryHandler,
		getUserDisputesHandler:     deps.GetUserDisputesHandler,
		getOwnerDisputesHandler:    deps.GetOwnerDisputesHandler,
		getAllDisputesHandler:      deps.GetAllDisputesHandler,
		getAllAccountsHandler:      deps.GetAllAccountsHandler,
		getAccountProfileHandler:   deps.GetAccountProfileHandler,

		login:  deps.LoginService,
		tokens: deps.TokenService,
		otp:    deps.OTPService,
	}
}

// RegisterRoutes wires every endpoint under /api/v1. Auth endpoints are
// public; everything else requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/otp/send", s.SendCode)
	api.POST("/auth/otp/verify", s.VerifyCode)

	protected := api.Group("", AuthMiddleware(s.tokens))

	protected.POST("/auth/change-password", s.ChangePassword)

	protected.GET("/profile", s.GetOwnProfile)
	protected.PUT("/profile", s.UpdateOwnProfile)

	protected.POST("/loads", s.PostLoad)
	protected.GET("/loads", s.GetAllLoads)
	protected.GET("/loads/available", s.GetAvailableLoads)
	protected.GET("/loads/my", s.GetOwnerLoads)
	protected.GET("/loads/assigned", s.GetAssignedLoads)
	protected.PATCH("/loads/:load_id/status", s.UpdateLoadStatus)
	protected.POST("/loads/:load_id/hire", s.HireDriver)
	protected.POST("/loads/:load_id/bids", s.PlaceBid)
	protected.GET("/loads/:load_id/bids", s.GetBidsForLoad)

	protected.POST("/bids/:bid_id/accept", s.AcceptBid)
	protected.POST("/bids/:bid_id/decline", s.DeclineBid)
	protected.GET("/bids/my", s.GetDriverBids)
	protected.GET("/bids/history", s.GetDriverBidHistory)

	protected.POST("/disputes", s.RaiseDispute)
	protected.GET("/disputes", s.GetAllDisputes)
	protected.GET("/disputes/raised", s.GetUserDisputes)
	protected.GET("/disputes/owner", s.GetOwnerDisputes)
	protected.POST("/disputes/:dispute_id/resolve", s.ResolveDispute)

	protected.GET("/accounts", s.GetAllAccounts)
	protected.DELETE("/accounts/:account_id", s.RemoveAccount)
	protected.GET("/accounts/:account_id/profile", s.GetAccountProfile)
	protected.PUT("/accounts/:account_id/profile", s.UpdateAccountProfile)
}
