package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notetidy/internal/cli"
	"github.com/sgx-labs/notetidy/internal/config"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig()
		},
	}
}

func runConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	source := config.FindConfigFile()
	if source == "" {
		source = "(built-in defaults)"
	}
	fmt.Printf("%sconfig source%s  %s\n\n", cli.Bold, cli.Reset, cli.ShortenHome(source))

	notePath := cfg.Note.Path
	if notePath == "" {
		notePath = "(not set)"
	}
	fmt.Printf("note.path           %s\n", notePath)
	fmt.Printf("note.output_suffix  %q\n", cfg.Note.OutputSuffix)
	fmt.Printf("journal.enabled     %v\n", cfg.Journal.Enabled)
	fmt.Printf("journal.path        %s\n", cli.ShortenHome(cfg.DBPath()))
	fmt.Printf("watch.debounce_ms   %d\n", cfg.Watch.DebounceMs)
	fmt.Printf("display.mode        %s\n", cfg.Display.Mode)
	return nil
}
