// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "deposit-service/internal/api"
	"deposit-service/internal/api/handler"
	"deposit-service/internal/config"
	"deposit-service/internal/event"
	eventkafka "deposit-service/internal/event/kafka"
	"deposit-service/internal/repository"
	"deposit-service/internal/repository/postgres"
	"deposit-service/internal/service"
	"deposit-service/internal/util"
	"deposit-service/pkg/db"
	"deposit-service/pkg/messaging"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config   *config.AppConfig
	Logger   *slog.Logger
	DB       *sqlx.DB
	Producer *messaging.KafkaProducer

	// Repositories
	DepositRepository repository.DepositRepository

	// Event publishing
	EventPublisher event.Publisher

	// Services
	DepositService service.DepositService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := postgres.ApplySchema(ctx, app.DB); err != nil {
		return fmt.Errorf("failed to apply database schema: %w", err)
	}
	app.Logger.Info("Database schema applied.")

	// 4. Initialize Kafka Producer and Event Publisher
	app.Producer = messaging.NewKafkaProducer(app.Config.Kafka.Brokers, app.Config.Kafka.Topic)
	app.EventPublisher = eventkafka.NewPublisher(app.Producer)
	app.Logger.Info("Kafka producer initialized.", "topic", app.Config.Kafka.Topic)

	// 5. Initialize Repositories
	app.DepositRepository = postgres.NewDepositRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 6. Initialize Services
	app.DepositService = service.NewDepositService(
		app.DB, // This is the DBExecutor
		app.DepositRepository,
		app.EventPublisher,
		app.Config.Commission,
	)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	depositHandler := handler.NewDepositHandler(app.DepositService, app.Logger)
	app.HTTPHandler = router.NewRouter(depositHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.Producer != nil {
		if err := app.Producer.Close(); err != nil {
			app.Logger.Error("Failed to close Kafka producer", "error", err)
			return fmt.Errorf("failed to close kafka producer: %w", err)
		}
		app.Logger.Info("Kafka producer closed.")
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
