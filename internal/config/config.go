// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"deposit-service/pkg/db" // Import db package for its Config struct
)

// KafkaConfig holds the event channel configuration.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// CommissionConfig holds the commission policy applied at deposit creation.
type CommissionConfig struct {
	// FreeTransactionLimit is the number of deposits an account may hold
	// before new deposits are charged a commission.
	FreeTransactionLimit int64
	// Amount is the flat commission charged beyond the free limit.
	Amount decimal.Decimal
}

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config
	Kafka      KafkaConfig
	Commission CommissionConfig
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost" // Default to localhost for local development
	}
	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "5432" // Default PostgreSQL port
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "depositdb"
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable" // Default to disable for local development
	}

	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		kafkaBrokers = "localhost:9092"
	}
	kafkaTopic := os.Getenv("KAFKA_DEPOSIT_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = "deposits"
	}

	freeLimitStr := os.Getenv("FREE_TRANSACTION_LIMIT")
	if freeLimitStr == "" {
		freeLimitStr = "5"
	}
	freeLimit, err := strconv.ParseInt(freeLimitStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FREE_TRANSACTION_LIMIT: %w", err)
	}

	commissionStr := os.Getenv("COMMISSION_AMOUNT")
	if commissionStr == "" {
		commissionStr = "1.00"
	}
	commissionAmount, err := decimal.NewFromString(commissionStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COMMISSION_AMOUNT: %w", err)
	}
	if commissionAmount.IsNegative() {
		return nil, fmt.Errorf("COMMISSION_AMOUNT must not be negative: %s", commissionStr)
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(kafkaBrokers, ","),
			Topic:   kafkaTopic,
		},
		Commission: CommissionConfig{
			FreeTransactionLimit: freeLimit,
			Amount:               commissionAmount,
		},
	}, nil
}
