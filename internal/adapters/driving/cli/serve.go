package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/butch-garage/showroom/internal/adapters/driving/httpapi"
	"github.com/butch-garage/showroom/internal/core/domain"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve the catalog and generation endpoints as JSON over HTTP.

The listen address comes from --addr, then the server.addr setting.

Examples:
  showroom serve
  showroom serve --addr 127.0.0.1:9000
  curl 'localhost:8080/api/v1/vehicles?search=2055&sort=price'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	addr, err := resolveServeAddr()
	if err != nil {
		return err
	}

	ports := &httpapi.Ports{Catalog: catalogService}
	if generationService != nil {
		ports.Generation = generationService
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Showroom API listening on http://%s\n", displayAddr(addr))
	return httpapi.Serve(cmd.Context(), addr, ports)
}

func resolveServeAddr() (string, error) {
	if serveAddr != "" {
		return serveAddr, nil
	}
	if settingsService == nil {
		return domain.DefaultServerAddr, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Server.Addr, nil
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
