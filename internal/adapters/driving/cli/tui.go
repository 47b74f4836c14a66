package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/butch-garage/showroom/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive showroom",
	Long: `Launch the interactive terminal showroom.

Search the catalog as you type, cycle filters and open a vehicle to see
its market trend. With an API key configured the detail view can also
generate blueprints, performance patches and social campaigns.

Controls:
  /, Tab       - Focus search
  ↑/k, ↓/j     - Navigate vehicles
  Enter        - Open vehicle
  m y c o      - Cycle market, year, type and origin
  s            - Cycle sort order
  r            - Reset filters
  b t p        - Blueprint, tune, social (detail view)
  Esc          - Back
  ?            - Toggle help
  q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panicked: %v", r)
		}
	}()

	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	ports := tui.NewPorts(catalogService, generationService, settingsService)
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	return app.WithContext(cmd.Context()).Run()
}
