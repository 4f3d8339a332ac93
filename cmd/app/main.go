package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"salesorders/cmd"
	httpin "salesorders/internal/adapters/in/http"
	"salesorders/internal/adapters/out/postgres/itemrepo"
	"salesorders/internal/adapters/out/postgres/orderrepo"
	"salesorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db)

	if configs.JobsEnabled {
		jobManager := jobs.NewJobManager(
			app.CreateGetWaitingRecurrentOrdersQueryHandler(),
			app.CreateRestartOrderCommandHandler(),
			configs.RecurrenceSchedule,
			logger,
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		RecurrenceSchedule: goDotEnvVariable("RECURRENCE_SCHEDULE"),
		JobsEnabled:        goDotEnvVariable("JOBS_ENABLED") == "true",
	}
	if config.RecurrenceSchedule == "" {
		config.RecurrenceSchedule = "0 * * * * *"
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderStatusDTO{},
		&itemrepo.ItemDTO{},
		&itemrepo.ItemStatusDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreatePerformOrderTransactionCommandHandler(),
		app.CreatePerformItemTransactionCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCancelOrderItemsCommandHandler(),
		app.CreateBackorderItemsCommandHandler(),
		app.CreateRestartOrderCommandHandler(),
		app.CreateRestartDisputedOrderCommandHandler(),
		app.CreateChangeShipmentAddressCommandHandler(),
		app.CreateChangeDeliverySpeedCommandHandler(),
		app.CreateChangeRecurrenceCommandHandler(),
		app.CreateAddItemsCommandHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
