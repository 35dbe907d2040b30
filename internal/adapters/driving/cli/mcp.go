package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can calculate
and categorise BMI values.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Tools:
  calculate_bmi        Validate measurements and return BMI with category
  validate_bmi_input   Report the first invalid field, if any
  categorize_bmi       Map a BMI value to its category

Resources:
  bmi://categories         The full scale
  bmi://categories/{slug}  One category, e.g. bmi://categories/healthy-weight

Examples:
  # Stdio mode (default)
  bmi mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  bmi mcp serve --port 8090

Client configuration:
  {
    "mcpServers": {
      "bmi": {
        "command": "/path/to/bmi",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{Calculator: calculatorService})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		cmd.Printf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
