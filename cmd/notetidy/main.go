// Package main is the entrypoint for the notetidy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notetidy/internal/config"
	"github.com/sgx-labs/notetidy/internal/store"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "notetidy",
		Short: "Reorganize a personal note file",
		Long:  "notetidy — splits a note file into entries, fixes dates and weekday annotations, and reorders entries by tag.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(tidyCmd())
	root.AddCommand(watchCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(logCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(configCmd())
	root.AddCommand(versionCmd())

	// Global --note flag
	root.PersistentFlags().StringVar(&config.NoteOverride, "note", "", "Note file path (overrides config)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the notetidy version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("notetidy %s\n", Version)
			return nil
		},
	}
}

// resolveNotePath picks the target file: positional arg > --note > config.
func resolveNotePath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return cfg.NotePath()
}

// openJournal opens the run journal, or returns nil when it is disabled or
// unavailable. Journal problems never block a tidy.
func openJournal(cfg *config.Config) *store.DB {
	if !cfg.Journal.Enabled {
		return nil
	}
	db, err := store.OpenPath(cfg.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] journal unavailable: %v\n", err)
		return nil
	}
	return db
}
