package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notetidy/internal/cli"
	"github.com/sgx-labs/notetidy/internal/config"
)

func logCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent tidy runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")
	return cmd
}

func runLog(limit int) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if !cfg.Journal.Enabled {
		return fmt.Errorf("journal is disabled (journal.enabled = false)")
	}

	db := openJournal(cfg)
	if db == nil {
		return fmt.Errorf("journal unavailable at %s", cfg.DBPath())
	}
	defer db.Close()

	runs, err := db.RecentRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No tidy runs recorded yet.")
		return nil
	}

	for _, r := range runs {
		status := cli.Dim + "unchanged" + cli.Reset
		if r.Changed {
			status = cli.Green + "changed" + cli.Reset
		}
		fmt.Printf("%s  %-5s  %-30s  %3d entries  %s\n",
			r.RunAt.Format("2006-01-02 15:04"), r.Trigger, cli.ShortenHome(r.Path), r.Entries, status)
	}
	return nil
}
