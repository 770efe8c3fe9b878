package tidy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgx-labs/notetidy/internal/store"
)

const sample = "p\n## [] 2026/02/19 B\n## [] 2026/02/20 A\n"
const sampleTidied = "p\n## [] 2026/02/20(金) A\n## [] 2026/02/19(木) B\n"

func writeNote(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}
	return path
}

func TestFile_WritesDerivedPath(t *testing.T) {
	path := writeNote(t, sample)
	out := filepath.Join(filepath.Dir(path), "note_sorted.md")

	res, wrote, err := File(nil, path, out, "cli", false)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if wrote != out {
		t.Fatalf("wrote = %q, want %q", wrote, out)
	}
	if !res.Changed || res.Entries != 2 {
		t.Fatalf("result = %+v", res)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != sampleTidied {
		t.Fatalf("output = %q", string(data))
	}

	orig, _ := os.ReadFile(path)
	if string(orig) != sample {
		t.Fatalf("source was modified")
	}
}

func TestFile_InPlaceOverwritesSource(t *testing.T) {
	path := writeNote(t, sample)

	_, wrote, err := File(nil, path, "", "cli", true)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if wrote != path {
		t.Fatalf("wrote = %q, want %q", wrote, path)
	}

	data, _ := os.ReadFile(path)
	if string(data) != sampleTidied {
		t.Fatalf("file = %q", string(data))
	}
}

func TestFile_MissingSourceIsHardError(t *testing.T) {
	if _, _, err := File(nil, filepath.Join(t.TempDir(), "nope.md"), "", "cli", true); err == nil {
		t.Fatalf("expected error for missing source")
	}
}

func TestFile_RecordsJournalRun(t *testing.T) {
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	defer db.Close()

	path := writeNote(t, sample)
	if _, _, err := File(db, path, "", "cli", true); err != nil {
		t.Fatalf("File: %v", err)
	}

	runs, err := db.RecentRuns(1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("runs = %v, err = %v", runs, err)
	}
	r := runs[0]
	if r.Path != path || r.Trigger != "cli" || !r.Changed {
		t.Fatalf("run = %+v", r)
	}
	if r.Hash != store.HashText(sampleTidied) {
		t.Fatalf("hash = %q", r.Hash)
	}
	if r.BytesIn != len(sample) || r.BytesOut != len(sampleTidied) {
		t.Fatalf("bytes = %d/%d", r.BytesIn, r.BytesOut)
	}
}

func TestPreview_DoesNotTouchFile(t *testing.T) {
	path := writeNote(t, sample)

	res, err := Preview(nil, path, "cli")
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if res.Output != sampleTidied {
		t.Fatalf("preview = %q", res.Output)
	}

	data, _ := os.ReadFile(path)
	if string(data) != sample {
		t.Fatalf("preview modified the file")
	}
}

func TestCollectStats(t *testing.T) {
	text := "---\ntitle: My Notes\ntags:\n  - log\n---\nintro\n" +
		"## [] 2026/02/13 T\n- [] 2026/02/19 a\n- [x] 2026/02/10 done\n" +
		"## [w] 2026/02/14 W\n- [] 2026/02/16 b\n" +
		"## [x] 2026/02/15 O\n"
	stats := CollectStats("n.md", text)

	if stats.Title != "My Notes" || len(stats.Tags) != 1 {
		t.Fatalf("meta = %+v", stats)
	}
	if stats.Entries != 3 || stats.Void != 1 || stats.W != 1 || stats.Other != 1 {
		t.Fatalf("counts = %+v", stats)
	}
	if stats.PendingChildren != 2 {
		t.Fatalf("pending = %d", stats.PendingChildren)
	}
	if stats.EarliestPending != "2026/02/16" {
		t.Fatalf("earliest pending = %q", stats.EarliestPending)
	}
}

func TestCollectStats_EmptyText(t *testing.T) {
	stats := CollectStats("n.md", "")
	if stats.Entries != 0 || stats.PendingChildren != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}
