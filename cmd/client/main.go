package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/travelplanner/internal/client/cli"
	"github.com/dmitrijs2005/travelplanner/internal/client/config"
	"github.com/dmitrijs2005/travelplanner/internal/client/storage"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "err", err)
		return err
	}
	defer db.Close()

	cli.NewApp(cfg, db, log).Run(ctx)
	return nil
}

// loadConfig turns the panics raised by config parsing into an error.
func loadConfig() (cfg *config.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid configuration: %v", r)
		}
	}()
	return config.LoadConfig(), nil
}
