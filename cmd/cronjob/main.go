package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"prokat-rental/internal/config"
	"prokat-rental/internal/db"
	"prokat-rental/internal/events"
	"prokat-rental/internal/jobs"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/notify"
	"prokat-rental/internal/repository/postgres"
	"prokat-rental/internal/scheduler"
	"prokat-rental/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'activate-orders', 'complete-orders', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ПрокатПро cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database. Migrations are left to the API server.
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	conn, err := db.NewDB(cfg.GetDatabaseConnectionString(), false)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(conn)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		pub, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Error("Failed to connect to Kafka, status events are not published", "error", err)
		} else {
			publisher = pub
		}
	}
	defer publisher.Close()

	orderService := service.NewOrderService(
		store.OrderRepository,
		store.ClientRepository,
		publisher,
		notify.NewContractMailer(cfg.Email),
		cfg.Storefront.LessorName,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(orderService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		logger.Error("Failed to initialize scheduler", "error", err)
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "activate-orders":
		jobRunner.ActivateOrders()
	case "complete-orders":
		jobRunner.CompleteOrders()
	case "all":
		jobRunner.RunAll()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - activate-orders\n")
		fmt.Printf("  - complete-orders\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
