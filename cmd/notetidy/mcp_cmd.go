package main

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/sgx-labs/notetidy/internal/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP stdio server",
		Long:  "Exposes the tidy pipeline over the Model Context Protocol: tidy_text, tidy_note, note_stats and tidy_log tools on stdio.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mcpserver.Version = Version
			return mcpserver.Serve()
		},
	}
}
