package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Gemini API key, models, rate limits and the
HTTP listen address.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Store the Gemini API key",
	Long: `Store the Gemini API key in the config file.

Without an argument the key is read from the terminal without echo.
GEMINI_API_KEY or API_KEY in the environment take precedence over the
stored key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsSetKey,
}

var settingsClearKeyCmd = &cobra.Command{
	Use:   "clear-key",
	Short: "Remove the stored Gemini API key",
	Args:  cobra.NoArgs,
	RunE:  runSettingsClearKey,
}

var settingsModelsCmd = &cobra.Command{
	Use:   "models [text] [pro] [image]",
	Short: "Set the generation models",
	Long:  `Set the text, pro and image models. Pass "" to keep a model unchanged.`,
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runSettingsModels,
}

var settingsRateCmd = &cobra.Command{
	Use:   "rate-limit [requests-per-second] [burst]",
	Short: "Set client-side request throttling",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsRate,
}

var settingsAddrCmd = &cobra.Command{
	Use:   "server-addr [addr]",
	Short: "Set the HTTP API listen address",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAddr,
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check settings and ping Gemini",
	RunE:  runSettingsValidate,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	settingsCmd.AddCommand(settingsClearKeyCmd)
	settingsCmd.AddCommand(settingsModelsCmd)
	settingsCmd.AddCommand(settingsRateCmd)
	settingsCmd.AddCommand(settingsAddrCmd)
	settingsCmd.AddCommand(settingsValidateCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[AI]")
	if settings.AI.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.AI.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Text Model: %s\n", settings.AI.TextModel)
	cmd.Printf("  Pro Model: %s\n", settings.AI.ProModel)
	cmd.Printf("  Image Model: %s\n", settings.AI.ImageModel)
	cmd.Printf("  Rate Limit: %g req/s (burst %d)\n", settings.AI.RequestsPerSecond, settings.AI.Burst)
	status := "configured"
	if !settings.AI.IsConfigured() {
		status = "not configured (browsing only)"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSetKey(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("Enter API key: ")
		key = readPassword()
		cmd.Println()
	}

	if err := settingsService.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}
	cmd.Println("API key saved. Generation takes effect on next start.")
	return nil
}

func runSettingsClearKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.ClearAPIKey(); err != nil {
		return fmt.Errorf("failed to clear API key: %w", err)
	}
	cmd.Println("Stored API key removed.")
	for _, name := range apiKeyEnvVars {
		if os.Getenv(name) != "" {
			warnColor.Fprintf(cmd.OutOrStdout(), "%s is still set in the environment and takes precedence.\n", name)
		}
	}
	return nil
}

func runSettingsModels(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	models := make([]string, 3)
	copy(models, args)
	if err := settingsService.SetModels(models[0], models[1], models[2]); err != nil {
		return fmt.Errorf("failed to set models: %w", err)
	}
	cmd.Println("Models updated.")
	return nil
}

func runSettingsRate(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	rps, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid requests per second %q", args[0])
	}
	burst, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid burst %q", args[1])
	}

	if err := settingsService.SetRateLimit(rps, burst); err != nil {
		return fmt.Errorf("failed to set rate limit: %w", err)
	}
	cmd.Printf("Rate limit set to %g req/s (burst %d).\n", rps, burst)
	return nil
}

func runSettingsAddr(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetServerAddr(args[0]); err != nil {
		return fmt.Errorf("failed to set server address: %w", err)
	}
	cmd.Printf("Server address set to %s.\n", args[0])
	return nil
}

func runSettingsValidate(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Validate(); err != nil {
		return err
	}

	cmd.Print("Validating Gemini configuration... ")
	if err := settingsService.ValidateAIConfig(); err != nil {
		cmd.Println("FAILED")
		return fmt.Errorf("AI configuration validation failed: %w", err)
	}
	cmd.Println("OK")
	return nil
}

// Helper functions.

// apiKeyEnvVars mirrors the variables the settings service consults.
var apiKeyEnvVars = []string{"GEMINI_API_KEY", "API_KEY"}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
