package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"world-cities/config"
	"world-cities/logger"
	"world-cities/repositories"
	"world-cities/services"
)

func main() {
	file := flag.String("file", "seed.yaml", "YAML seed file with countries and their cities")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging)

	if err := run(cfg, *file); err != nil {
		logger.Log.Error(err.Error())
		os.Exit(1)
	}
}

// run imports the seed file. The store is closed before run returns on every path.
func run(cfg config.AppConfig, file string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, err := services.LoadSeedFile(file)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	store, err := repositories.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Log.Warnf("failed to close storage: %v", err)
		}
	}()

	res, err := services.NewSeedService(store.Cities, store.Countries).Import(ctx, seed)
	if err != nil {
		logger.ErrorWithFields("seed import failed", logger.Fields{
			"file":            file,
			"countries_added": res.CountriesAdded,
			"cities_added":    res.CitiesAdded,
			"error":           err.Error(),
		})
		return fmt.Errorf("seed import: %w", err)
	}
	return nil
}
