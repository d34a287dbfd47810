/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/josephgoksu/roadmapper/internal/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants can generate
learning roadmaps.

The server runs over stdin/stdout and provides one tool:
- generate_roadmap {"topic": "..."}: returns the roadmap as Markdown

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	// stdout MUST be pure JSON-RPC. Status output goes to stderr.
	fmt.Fprintln(os.Stderr, "Roadmapper MCP Server starting...")

	deps, err := loadDeps(ctx, "mcp", false)
	if err != nil {
		return err
	}
	defer deps.Close()

	impl := &mcpsdk.Implementation{
		Name:    "roadmapper-mcp",
		Version: version,
	}
	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			deps.log.Info("MCP connection established")
		},
	}

	server := mcpsdk.NewServer(impl, serverOpts)
	mcp.Register(server, deps.generator)

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server: %w", err)
	}
	return nil
}
