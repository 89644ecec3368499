package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fixxo/cmd"
	httpin "fixxo/internal/adapters/in/http"
	"fixxo/internal/adapters/out/postgres/requestrepo"
	"fixxo/internal/adapters/out/postgres/riderrepo"
	"fixxo/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		AdminPrincipals: strings.Split(goDotEnvVariable("ADMIN_PRINCIPALS"), ","),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&riderrepo.RiderDTO{}, &requestrepo.RequestDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReconcileAvailabilityCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Validator = httpin.NewRequestValidator()

	tokens := httpin.NewTokenIssuer(configs.JWTSecret)
	server := httpin.NewServer(
		app.CreateCreateRiderCommandHandler(),
		app.CreateUpdateRiderCommandHandler(),
		app.CreateDeleteRiderCommandHandler(),
		app.CreateSetRiderAvailabilityCommandHandler(),
		app.CreateCreateRequestCommandHandler(),
		app.CreateAssignRiderCommandHandler(),
		app.CreateOverrideRequestStatusCommandHandler(),
		app.CreateAdvanceRequestCommandHandler(),
		app.CreateCompleteAllRequestsCommandHandler(),
		app.CreateListRidersQueryHandler(),
		app.CreateListRequestsQueryHandler(),
		app.CreateRiderTasksQueryHandler(),
		app.CreateDashboardStatsQueryHandler(),
		app.UnitOfWorkFactory(),
		tokens,
	)

	server.RegisterRoutes(e,
		httpin.NewAdminGuard(configs.AdminPrincipals),
		httpin.NewRiderAuth(tokens),
	)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
