// Package cli provides the showroom command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/butch-garage/showroom/internal/core/ports/driving"
	"github.com/butch-garage/showroom/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services injected by main.
var (
	catalogService    driving.CatalogService
	generationService driving.GenerationService
	settingsService   driving.SettingsService
)

var (
	verbose     bool
	configDir   string
	catalogPath string
)

// Options carries the global flags needed to build the services.
type Options struct {
	// ConfigDir overrides ~/.showroom.
	ConfigDir string

	// CatalogPath loads vehicles from a YAML file instead of the embedded catalog.
	CatalogPath string
}

// Services is the set of core services built by a Bootstrap.
type Services struct {
	Catalog    driving.CatalogService
	Generation driving.GenerationService
	Settings   driving.SettingsService

	// Close releases background resources. May be nil.
	Close func()
}

// Bootstrap builds the services once flags have been parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	cleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "showroom",
	Short: "Butch Garage luxury vehicle showroom",
	Long: `Browse the Butch Garage catalog of ultra-luxury vehicles and generate
dossiers, sales packages, visuals and campaigns with Gemini.

Browsing works offline. Generation needs an API key: set GEMINI_API_KEY
or run 'showroom settings set-key'.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.showroom)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "load the catalog from a YAML file")
}

func setup(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}
	if bootstrap == nil {
		return nil
	}

	svc, err := bootstrap(cmd.Context(), Options{ConfigDir: configDir, CatalogPath: catalogPath})
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	SetServices(svc.Catalog, svc.Generation, svc.Settings)
	cleanup = svc.Close
	return nil
}

func teardown() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

// SetVersion sets the version reported by 'showroom version'.
func SetVersion(v string) {
	version = v
}

// SetServices injects the core services used by commands.
func SetServices(catalog driving.CatalogService, generation driving.GenerationService, settings driving.SettingsService) {
	catalogService = catalog
	generationService = generation
	settingsService = settings
}

// SetBootstrap registers the service factory run before every command.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer teardown()
	return rootCmd.ExecuteContext(ctx)
}
