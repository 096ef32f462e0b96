package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prokat-rental/internal/config"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/storefront"
)

const usage = `Usage: storefront [-config path] [-api url] <command> [flags]

Commands:
  catalog   [-category name] [-search text]   list equipment
  checkout  -items 1,2 [-start yyyy-mm-dd] [-end yyyy-mm-dd]
  orders    [-reversed]                        order history
  payments                                     payment status per order
  profile   [-set key=value ...]               show or update the company profile
  chat      <text>                             message the manager
`

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	apiURL := flag.String("api", "", "Rental API URL (overrides storefront.api_url)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *apiURL != "" {
		cfg.Storefront.APIURL = *apiURL
	}

	// stdout carries contracts and tables; logs go to stderr
	logger.InitializeWithWriter(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	remote, err := storefront.NewHTTPRemote(cfg.Storefront.APIURL, time.Duration(cfg.Storefront.RequestTimeoutSeconds)*time.Second)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	session := storefront.NewSession(remote, storefront.SessionConfig{
		Lessor:     cfg.Storefront.LessorName,
		RentalDays: cfg.Storefront.RentalDays,
		ChatDelay:  time.Duration(cfg.Storefront.ChatReplyDelayMs) * time.Millisecond,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{session: session, out: os.Stdout}
	if err := app.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		var unknown *unknownCommandError
		if errors.As(err, &unknown) {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Ошибка: %s\n", describe(err))
		os.Exit(1)
	}
}
