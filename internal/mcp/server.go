// Package mcp implements the notetidy MCP stdio server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sgx-labs/notetidy/internal/config"
	"github.com/sgx-labs/notetidy/internal/organize"
	"github.com/sgx-labs/notetidy/internal/store"
	"github.com/sgx-labs/notetidy/internal/tidy"
)

var db *store.DB

// Version is set by the caller (main) before calling Serve.
var Version = "dev"

// Serve starts the MCP server on stdio.
func Serve() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Journal.Enabled {
		db, err = store.OpenPath(cfg.DBPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "[WARN] journal unavailable: %v\n", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "notetidy",
		Version: Version,
	}, nil)

	registerTools(server)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tidy_text",
		Description: "Reorganize raw note text: entries are split at '## [' headers, header dates follow the earliest unchecked child, weekday annotations are corrected, and entries are bucketed by tag (void/w/other) and sorted. Nothing is written to disk.\n\nArgs:\n  text: Raw note text\n\nReturns the reorganized text.",
	}, handleTidyText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tidy_note",
		Description: "Tidy a note file on disk. With write=true the file is rewritten in place; otherwise a preview of the reorganized content is returned and the file is untouched.\n\nArgs:\n  path: Note file path\n  write: Rewrite the file in place (default false)\n\nReturns a run summary, plus the preview when write=false.",
	}, handleTidyNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "note_stats",
		Description: "Inspect a note file without changing it: frontmatter metadata, entry and bucket counts, pending (unchecked) children and the earliest pending date.\n\nArgs:\n  path: Note file path\n\nReturns statistics as JSON.",
	}, handleNoteStats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tidy_log",
		Description: "Show recent tidy runs from the journal.\n\nArgs:\n  limit: Number of runs (default 10)\n\nReturns the run history as JSON.",
	}, handleTidyLog)
}

// Tool input types

type tidyTextInput struct {
	Text string `json:"text" jsonschema:"Raw note text to reorganize"`
}

type tidyNoteInput struct {
	Path  string `json:"path" jsonschema:"Note file path"`
	Write bool   `json:"write,omitempty" jsonschema:"Rewrite the file in place (default false)"`
}

type noteStatsInput struct {
	Path string `json:"path" jsonschema:"Note file path"`
}

type tidyLogInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of runs (default 10)"`
}

// Tool handlers

func handleTidyText(ctx context.Context, req *mcp.CallToolRequest, input tidyTextInput) (*mcp.CallToolResult, any, error) {
	res := organize.Run(input.Text)
	return textResult(res.Output), nil, nil
}

func handleTidyNote(ctx context.Context, req *mcp.CallToolRequest, input tidyNoteInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return textResult("Error: path is required"), nil, nil
	}

	if input.Write {
		res, wrote, err := tidy.File(db, input.Path, "", "mcp", true)
		if err != nil {
			return textResult(fmt.Sprintf("Error: %v", err)), nil, nil
		}
		return textResult(fmt.Sprintf("Tidied %s: %d entries (void=%d w=%d other=%d), changed=%v",
			wrote, res.Entries, res.Void, res.W, res.Other, res.Changed)), nil, nil
	}

	res, err := tidy.Preview(db, input.Path, "mcp")
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), nil, nil
	}
	summary := fmt.Sprintf("Preview of %s: %d entries (void=%d w=%d other=%d), changed=%v\n\n",
		input.Path, res.Entries, res.Void, res.W, res.Other, res.Changed)
	return textResult(summary + guardText(res.Output)), nil, nil
}

func handleNoteStats(ctx context.Context, req *mcp.CallToolRequest, input noteStatsInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return textResult("Error: path is required"), nil, nil
	}
	stats, err := tidy.StatsFor(input.Path)
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), nil, nil
	}
	stats.Title = guardText(stats.Title)

	out, _ := json.MarshalIndent(stats, "", "  ")
	return textResult(string(out)), nil, nil
}

func handleTidyLog(ctx context.Context, req *mcp.CallToolRequest, input tidyLogInput) (*mcp.CallToolResult, any, error) {
	if db == nil {
		return textResult("Journal is disabled; no run history available."), nil, nil
	}
	runs, err := db.RecentRuns(input.Limit)
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), nil, nil
	}
	if len(runs) == 0 {
		return textResult("No tidy runs recorded yet."), nil, nil
	}
	out, _ := json.MarshalIndent(runs, "", "  ")
	return textResult(string(out)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
