package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pyoutline/internal/mcp"
)

var mcpRoot string

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server exposing the outline tool",
	Long: `Start a Model Context Protocol (MCP) server on stdio that lets coding
assistants request outlines of Python modules.

The server registers one read-only tool, python_outline, which accepts
either a file path (relative paths resolve against --root) or source text.

Example:
  pyoutline mcp --root .`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpRoot, "root", ".", "Project root for relative paths and configuration")
}

func runMCP(cmd *cobra.Command, args []string) error {
	root, cfg, outliner, err := loadProject(mcpRoot)
	if err != nil {
		return err
	}
	defer outliner.Close()

	fmt.Fprintf(os.Stderr, "pyoutline MCP Server\n")
	fmt.Fprintf(os.Stderr, "Project Root: %s\n\n", root)

	server, err := mcp.NewOutlineServer(cfg.MCP.ServerName, outliner, root)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server.Serve(context.Background())
}
