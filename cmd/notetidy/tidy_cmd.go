package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notetidy/internal/cli"
	"github.com/sgx-labs/notetidy/internal/config"
	"github.com/sgx-labs/notetidy/internal/tidy"
)

func tidyCmd() *cobra.Command {
	var (
		write    bool
		toStdout bool
	)
	cmd := &cobra.Command{
		Use:   "tidy [file]",
		Short: "Reorganize a note file",
		Long:  "Reorganizes a note file: header dates follow the earliest unchecked child, weekday annotations are corrected, and entries are bucketed and sorted. By default the result is written next to the source with the configured suffix.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTidy(args, write, toStdout)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the source file in place")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the result to stdout, write nothing")
	return cmd
}

func runTidy(args []string, write, toStdout bool) error {
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

	if toStdout {
		res, err := tidy.Preview(db, path, "cli")
		if err != nil {
			return err
		}
		fmt.Print(res.Output)
		return nil
	}

	res, wrote, err := tidy.File(db, path, cfg.OutputPath(path), "cli", write)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stderr, cli.Summary(res, wrote, cfg.Display.Mode))
	return nil
}
