package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notetidy/internal/config"
	"github.com/sgx-labs/notetidy/internal/watcher"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-tidy the note file whenever it changes",
		Long:  "Watches the note file and rewrites it in place after every (debounced) change. The journal's content hash keeps notetidy from reacting to its own writes.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args)
		},
	}
}

func runWatch(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	path, err := resolveNotePath(cfg, args)
	if err != nil {
		return err
	}

	db := openJournal(cfg)
	if db != nil {
		defer db.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watcher.Watch(ctx, db, path, cfg.Debounce())
}
