package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"lorrylink/cmd"
	adapterhttp "lorrylink/internal/adapters/in/http"
	"lorrylink/internal/adapters/out/postgres/accountrepo"
	"lorrylink/internal/adapters/out/postgres/bidrepo"
	"lorrylink/internal/adapters/out/postgres/disputerepo"
	"lorrylink/internal/adapters/out/postgres/loadrepo"
	"lorrylink/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CodeStore(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError lets repositories catch unique violations as
	// gorm.ErrDuplicatedKey.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&loadrepo.LoadDTO{},
		&bidrepo.BidDTO{},
		&disputerepo.DisputeDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := adapterhttp.NewServer(adapterhttp.ServerDeps{
		RegisterAccountHandler:  app.CreateRegisterAccountCommandHandler(),
		ChangePasswordHandler:   app.CreateChangePasswordCommandHandler(),
		UpdateProfileHandler:    app.CreateUpdateProfileCommandHandler(),
		RemoveAccountHandler:    app.CreateRemoveAccountCommandHandler(),
		PostLoadHandler:         app.CreatePostLoadCommandHandler(),
		UpdateLoadStatusHandler: app.CreateUpdateLoadStatusCommandHandler(),
		PlaceBidHandler:         app.CreatePlaceBidCommandHandler(),
		HireDriverHandler:       app.CreateHireDriverCommandHandler(),
		AcceptBidHandler:        app.CreateAcceptBidCommandHandler(),
		DeclineBidHandler:       app.CreateDeclineBidCommandHandler(),
		RaiseDisputeHandler:     app.CreateRaiseDisputeCommandHandler(),
		ResolveDisputeHandler:   app.CreateResolveDisputeCommandHandler(),

		GetAvailableLoadsHandler:   app.CreateGetAvailableLoadsQueryHandler(),
		GetOwnerLoadsHandler:       app.CreateGetOwnerLoadsQueryHandler(),
		GetAssignedLoadsHandler:    app.CreateGetAssignedLoadsQueryHandler(),
		GetAllLoadsHandler:         app.CreateGetAllLoadsQueryHandler(),
		GetBidsForLoadHandler:      app.CreateGetBidsForLoadQueryHandler(),
		GetDriverBidsHandler:       app.CreateGetDriverBidsQueryHandler(),
		GetDriverBidHistoryHandler: app.CreateGetDriverBidHistoryQueryHandler(),
		GetUserDisputesHandler:     app.CreateGetUserDisputesQueryHandler(),
		GetOwnerDisputesHandler:    app.CreateGetOwnerDisputesQueryHandler(),
		GetAllDisputesHandler:      app.CreateGetAllDisputesQueryHandler(),
		GetAllAccountsHandler:      app.CreateGetAllAccountsQueryHandler(),
		GetAccountProfileHandler:   app.CreateGetAccountProfileQueryHandler(),

		LoginService: app.LoginService(),
		TokenService: app.TokenService(),
		OTPService:   app.OTPService(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
