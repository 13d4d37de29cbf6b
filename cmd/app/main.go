package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seller/cmd"
	httpin "seller/internal/adapters/in/http"
	"seller/internal/adapters/out/kafka"
	"seller/internal/adapters/out/payment"
	"seller/internal/adapters/out/postgres"
	"seller/internal/core/ports"
	"seller/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(ctx, configs, logger)
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	publisher := mustCreatePublisher(configs, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.WithError(err).Warn("failed to close event publisher")
		}
	}()

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		publisher,
		payment.NewLoggingRefundService(logger),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
	}

	if raw := os.Getenv("ORDER_PAYMENT_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid ORDER_PAYMENT_TIMEOUT %q: %v", raw, err)
		}
		config.OrderPaymentTimeout = timeout
	}

	return config
}

// loadDotEnv reads .env when present. Variables already set in the
// environment take precedence.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func newLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logrus.NewEntry(logger).WithField("service", "seller")
}

func mustOpenDatabase(ctx context.Context, configs cmd.Config, logger *logrus.Entry) *gorm.DB {
	if err := postgres.EnsureDatabase(ctx, configs.AdminDSN(), configs.DBName); err != nil {
		log.Fatalf("Failed to ensure database %s: %v", configs.DBName, err)
	}

	gormDB, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	logger.WithField("database", configs.DBName).Info("database ready")
	return gormDB
}

func mustCreatePublisher(configs cmd.Config, logger *logrus.Entry) eventPublisher {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Warn("KAFKA_HOST is empty, order events will not be published")
		return kafka.NewNoopPublisher(logger)
	}

	publisher, err := kafka.NewPublisher(brokers, configs.KafkaOrderChangedTopic, logger)
	if err != nil {
		log.Fatalf("Failed to create kafka publisher: %v", err)
	}
	return publisher
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *logrus.Entry) {
	createOrder := app.CreateCreateOrderCommandHandler()
	cancelOrder := app.CreateCancelOrderCommandHandler()
	payOrder := app.CreatePayOrderCommandHandler()
	finishOrder := app.CreateFinishOrderCommandHandler()

	observer := metrics.NewMetrics()
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:     &createOrder,
		CancelOrder:     &cancelOrder,
		PayOrder:        &payOrder,
		FinishOrder:     &finishOrder,
		GetOrder:        app.CreateGetOrderQueryHandler(),
		ListBuyerOrders: app.CreateListBuyerOrdersQueryHandler(),
	}, observer, logger)

	doc, err := httpin.LoadSpec(ctx)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}

	e, err := httpin.NewRouter(server, doc, observer, logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		logger.WithField("port", port).Info("http server started")
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.WithError(shutdownErr).Error("http server shutdown failed")
	}
}
