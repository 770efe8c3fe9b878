package tidy

import (
	"fmt"
	"os"

	"github.com/sgx-labs/notetidy/internal/normalize"
	"github.com/sgx-labs/notetidy/internal/note"
)

// Stats describes a note file without modifying it.
type Stats struct {
	Path            string   `json:"path"`
	Title           string   `json:"title,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Created         string   `json:"created,omitempty"`
	Entries         int      `json:"entries"`
	Void            int      `json:"void"`
	W               int      `json:"w"`
	Other           int      `json:"other"`
	PendingChildren int      `json:"pending_children"`
	EarliestPending string   `json:"earliest_pending,omitempty"`
}

// StatsFor reads and inspects the note at path.
func StatsFor(path string) (Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("read note %s: %w", path, err)
	}
	return CollectStats(path, string(data)), nil
}

// CollectStats inspects raw note text: frontmatter metadata from the
// preamble, bucket counts, and pending (unchecked) children.
func CollectStats(path, text string) Stats {
	entries := note.Split(text)
	meta := note.ParseMeta(entries[0].Text())

	stats := Stats{
		Path:    path,
		Title:   meta.Title,
		Tags:    meta.Tags,
		Created: meta.Created,
		Entries: len(entries) - 1,
	}
	for _, e := range entries[1:] {
		switch tag, ok := e.Tag(); {
		case ok && tag == "":
			stats.Void++
		case ok && tag == "w":
			stats.W++
		default:
			stats.Other++
		}
		for _, d := range normalize.UncheckedDates(e) {
			stats.PendingChildren++
			if stats.EarliestPending == "" || d < stats.EarliestPending {
				stats.EarliestPending = d
			}
		}
	}
	return stats
}
