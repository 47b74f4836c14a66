package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/butch-garage/showroom/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the showroom to AI assistants over MCP",
	Long: `Model Context Protocol integration. Assistants can query the catalog,
read vehicles as resources and, with an API key, call the generators.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the MCP server on stdio, or on HTTP with --port.

Catalog tools are always offered. The generate_* tools appear only when
an API key is configured.

Examples:
  showroom mcp serve
  showroom mcp serve --port 8081

Assistant configuration:
  {
    "mcpServers": {
      "showroom": {
        "command": "/path/to/showroom",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

var mcpToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the MCP server would offer",
	Args:  cobra.NoArgs,
	RunE:  runMCPTools,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	mcpCmd.AddCommand(mcpToolsCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() (*mcp.Server, error) {
	if catalogService == nil {
		return nil, errors.New("catalog service not configured")
	}

	ports := &mcp.Ports{Catalog: catalogService}
	if generationService != nil && generationService.Available() {
		ports.Generation = generationService
	}
	return mcp.NewServer(ports)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		// stdout is free in HTTP mode; in stdio mode it carries JSON-RPC.
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", displayAddr(addr))
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

func runMCPTools(cmd *cobra.Command, _ []string) error {
	server, err := newMCPServer()
	if err != nil {
		return err
	}

	for _, name := range server.Tools() {
		cmd.Printf("  %s\n", name)
	}
	if !server.GenerationEnabled() {
		dimColor.Fprintln(cmd.OutOrStdout(), "Generation tools hidden: no API key configured.")
	}
	return nil
}
