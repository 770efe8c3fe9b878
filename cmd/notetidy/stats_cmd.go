package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notetidy/internal/cli"
	"github.com/sgx-labs/notetidy/internal/config"
	"github.com/sgx-labs/notetidy/internal/tidy"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Inspect a note file without changing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

func runStats(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	path, err := resolveNotePath(cfg, args)
	if err != nil {
		return err
	}

	stats, err := tidy.StatsFor(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s%s%s\n", cli.Bold, cli.ShortenHome(stats.Path), cli.Reset)
	if stats.Title != "" {
		fmt.Printf("  title     %s\n", stats.Title)
	}
	if len(stats.Tags) > 0 {
		fmt.Printf("  tags      %v\n", stats.Tags)
	}
	if stats.Created != "" {
		fmt.Printf("  created   %s\n", stats.Created)
	}
	fmt.Printf("  entries   %s\n", cli.FormatNumber(stats.Entries))
	fmt.Printf("  buckets   void=%d w=%d other=%d\n", stats.Void, stats.W, stats.Other)
	fmt.Printf("  pending   %d unchecked", stats.PendingChildren)
	if stats.EarliestPending != "" {
		fmt.Printf(" (earliest %s)", stats.EarliestPending)
	}
	fmt.Println()
	return nil
}
