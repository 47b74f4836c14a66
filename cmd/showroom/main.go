// Command showroom is the Butch Garage luxury vehicle showroom.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/butch-garage/showroom/internal/adapters/driven/catalog"
	"github.com/butch-garage/showroom/internal/adapters/driven/config/file"
	"github.com/butch-garage/showroom/internal/adapters/driven/gemini"
	"github.com/butch-garage/showroom/internal/adapters/driven/storage/memory"
	"github.com/butch-garage/showroom/internal/adapters/driving/cli"
	"github.com/butch-garage/showroom/internal/core/ports/driven"
	"github.com/butch-garage/showroom/internal/core/services"
	"github.com/butch-garage/showroom/internal/logger"
)

// version is overridden with -ldflags "-X main.version=...".
var version = "dev"

// Environment fallbacks for the global flags.
const (
	envConfigDir = "SHOWROOM_CONFIG_DIR"
	envCatalog   = "SHOWROOM_CATALOG"
)

func main() {
	// A missing .env is fine; the real environment still applies.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}

func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	if opts.ConfigDir == "" {
		opts.ConfigDir = os.Getenv(envConfigDir)
	}
	if opts.CatalogPath == "" {
		opts.CatalogPath = os.Getenv(envCatalog)
	}

	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, gemini.NewConfigValidator())

	store := memory.NewCatalogStore()
	catalogService := services.NewCatalogService(store)
	var src driven.CatalogSource = catalog.Embedded()
	if opts.CatalogPath != "" {
		src = catalog.File(opts.CatalogPath)
	}
	if err := catalogService.LoadFrom(ctx, src); err != nil {
		return nil, err
	}

	promptDir := ""
	if opts.ConfigDir != "" {
		promptDir = filepath.Join(opts.ConfigDir, "prompts")
	}
	prompts, err := file.NewPromptStore(promptDir)
	if err != nil {
		return nil, fmt.Errorf("prompts: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	generator, err := gemini.NewFromSettings(ctx, &settings.AI, prompts)
	if err != nil {
		// Browsing still works; generation reports itself unavailable.
		logger.Warn("Gemini unavailable: %v", err)
		generator = nil
	}
	generationService := services.NewGenerationService(store, generator)

	svc := &cli.Services{
		Catalog:    catalogService,
		Generation: generationService,
		Settings:   settingsService,
	}

	if generator == nil {
		return svc, nil
	}

	watcher, err := file.NewPromptWatcher(prompts, func(name string) {
		logger.Info("Reloaded prompt %s", name)
	})
	if err != nil {
		logger.Warn("Prompt hot reload disabled: %v", err)
		return svc, nil
	}
	if err := watcher.Start(ctx); err != nil {
		logger.Warn("Prompt hot reload disabled: %v", err)
		_ = watcher.Stop()
		return svc, nil
	}
	svc.Close = func() {
		if err := watcher.Stop(); err != nil {
			logger.Debug("stopping prompt watcher: %v", err)
		}
	}
	return svc, nil
}
