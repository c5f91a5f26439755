package cmd

import (
	"fmt"

	"lorrylink/internal/adapters/out/postgres"
	"lorrylink/internal/auth"
	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	hasher    auth.BcryptHasher
	tokens    *auth.TokenService
	login     *auth.LoginService
	otp       *auth.OTPService
	codeStore auth.CodeStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	tokens, err := auth.NewTokenService(config.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("create token service: %w", err)
	}

	// Login only reads accounts; without Begin the unit of work runs its
	// repositories directly against the pooled connection.
	accountReader := postgres.NewGormUnitOfWorkFactory(gormDB).Create()

	login, err := auth.NewLoginService(accountReader.AccountRepository(), tokens)
	if err != nil {
		return nil, fmt.Errorf("create login service: %w", err)
	}

	codeStore := auth.NewMemoryCodeStore()
	otp, err := auth.NewOTPService(codeStore)
	if err != nil {
		return nil, fmt.Errorf("create otp service: %w", err)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptHasher(),
		tokens:     tokens,
		login:      login,
		otp:        otp,
		codeStore:  codeStore,
	}, nil
}

func (c *CompositionRoot) TokenService() *auth.TokenService { return c.tokens }

func (c *CompositionRoot) LoginService() *auth.LoginService { return c.login }

func (c *CompositionRoot) OTPService() *auth.OTPService { return c.otp }

func (c *CompositionRoot) CodeStore() auth.CodeStore { return c.codeStore }

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateRemoveAccountCommandHandler() commands.RemoveAccountCommandHandler {
	return commands.NewRemoveAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreatePostLoadCommandHandler() commands.PostLoadCommandHandler {
	return commands.NewPostLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLoadStatusCommandHandler() commands.UpdateLoadStatusCommandHandler {
	return commands.NewUpdateLoadStatusCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreatePlaceBidCommandHandler() commands.PlaceBidCommandHandler {
	return commands.NewPlaceBidCommandHandler(c.biddingUoWFactory())
}

func (c *CompositionRoot) CreateHireDriverCommandHandler() commands.HireDriverCommandHandler {
	return commands.NewHireDriverCommandHandler(c.biddingUoWFactory())
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	return commands.NewAcceptBidCommandHandler(c.biddingUoWFactory())
}

func (c *CompositionRoot) CreateDeclineBidCommandHandler() commands.DeclineBidCommandHandler {
	return commands.NewDeclineBidCommandHandler(c.biddingUoWFactory())
}

func (c *CompositionRoot) CreateRaiseDisputeCommandHandler() commands.RaiseDisputeCommandHandler {
	return commands.NewRaiseDisputeCommandHandler(c.disputeUoWFactory())
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(c.disputeUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailableLoadsQueryHandler() queries.GetAvailableLoadsQueryHandler {
	return queries.NewGetAvailableLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnerLoadsQueryHandler() queries.GetOwnerLoadsQueryHandler {
	return queries.NewGetOwnerLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedLoadsQueryHandler() queries.GetAssignedLoadsQueryHandler {
	return queries.NewGetAssignedLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllLoadsQueryHandler() queries.GetAllLoadsQueryHandler {
	return queries.NewGetAllLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBidsForLoadQueryHandler() queries.GetBidsForLoadQueryHandler {
	return queries.NewGetBidsForLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverBidsQueryHandler() queries.GetDriverBidsQueryHandler {
	return queries.NewGetDriverBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverBidHistoryQueryHandler() queries.GetDriverBidHistoryQueryHandler {
	return queries.NewGetDriverBidHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserDisputesQueryHandler() queries.GetUserDisputesQueryHandler {
	return queries.NewGetUserDisputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnerDisputesQueryHandler() queries.GetOwnerDisputesQueryHandler {
	return queries.NewGetOwnerDisputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDisputesQueryHandler() queries.GetAllDisputesQueryHandler {
	return queries.NewGetAllDisputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllAccountsQueryHandler() queries.GetAllAccountsQueryHandler {
	return queries.NewGetAllAccountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountProfileQueryHandler() queries.GetAccountProfileQueryHandler {
	return queries.NewGetAccountProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) biddingUoWFactory() commands.BiddingUoWFactory {
	return FuncBiddingUoWFactory(func() commands.BiddingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) disputeUoWFactory() commands.DisputeUoWFactory {
	return FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncBiddingUoWFactory func() commands.BiddingUoW

func (f FuncBiddingUoWFactory) Create() commands.BiddingUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}