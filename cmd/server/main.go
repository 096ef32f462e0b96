package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "prokat-rental/internal/api/http"
	"prokat-rental/internal/config"
	"prokat-rental/internal/db"
	"prokat-rental/internal/events"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/notify"
	"prokat-rental/internal/repository/postgres"
	"prokat-rental/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ПрокатПро rental API...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "base_path", cfg.Server.BasePath)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	conn, err := db.NewDB(cfg.GetDatabaseConnectionString(), cfg.Database.Migrate)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()
	logger.Info("Database connection established", "migrated", cfg.Database.Migrate)

	// Initialize Repositories
	store := postgres.NewStore(conn)

	// Initialize event publishing
	publisher := newPublisher(cfg.Kafka)
	defer publisher.Close()

	// Initialize Services
	mailer := notify.NewContractMailer(cfg.Email)
	catalogSvc := service.NewCatalogService(store.EquipmentRepository)
	clientSvc := service.NewClientService(store.ClientRepository)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.ClientRepository,
		publisher,
		mailer,
		cfg.Storefront.LessorName,
	)

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(cfg.Server.BasePath, catalogSvc, orderSvc, clientSvc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}

// newPublisher connects to Kafka when enabled. A broker outage at startup
// degrades to dropping events; orders must keep working without them.
func newPublisher(cfg config.KafkaConfig) events.Publisher {
	if !cfg.Enabled {
		logger.Info("Kafka disabled, order events are not published")
		return events.NopPublisher{}
	}
	pub, err := events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
	if err != nil {
		logger.Error("Failed to connect to Kafka, order events are not published", "brokers", cfg.Brokers, "error", err)
		return events.NopPublisher{}
	}
	logger.Info("Publishing order events", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return pub
}
