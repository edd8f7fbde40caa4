package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"mfgorder/api"
	"mfgorder/cmd"
	_ "mfgorder/docs"
	adapterhttp "mfgorder/internal/adapters/in/http"
	"mfgorder/internal/adapters/out/postgres/orderheadrepo"
	"mfgorder/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close composition root", "error", err)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create job manager: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		WarehouseServiceURL:   goDotEnvVariable("WAREHOUSE_SERVICE_URL"),
		PrintSpoolerURL:       goDotEnvVariable("PRINT_SPOOLER_URL"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
		DefaultCompany:        goDotEnvIntVariable("DEFAULT_COMPANY"),
		PrintJobUser:          goDotEnvVariable("PRINT_JOB_USER"),
		PrintJobFacility:      goDotEnvVariable("PRINT_JOB_FACILITY"),
		PrintJobSchedule:      goDotEnvVariable("PRINT_JOB_SCHEDULE"),
		PrintJobBatchSize:     goDotEnvIntVariable("PRINT_JOB_BATCH_SIZE"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderheadrepo.OrderHeaderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		doc, err := api.Spec()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, doc)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := adapterhttp.NewServer(
		app.CreateUpdateDocumentsPrintedCommandHandler(),
		app.CreateUpdateDocumentsPrintedByWarehouseCommandHandler(),
		app.CreateGetOrderHeaderQueryHandler(),
		app.CreateListUnprintedOrdersQueryHandler(),
		app.DefaultCompany(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
