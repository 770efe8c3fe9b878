// Package tidy orchestrates one read / transform / write cycle over a note
// file and records it in the run journal.
package tidy

import (
	"fmt"
	"os"

	"github.com/sgx-labs/notetidy/internal/organize"
	"github.com/sgx-labs/notetidy/internal/store"
)

// File tidies the note at path. With inPlace the source file is rewritten,
// otherwise the output goes to outPath. I/O failures are hard errors;
// journal failures only warn. Returns the pipeline result and the path
// written.
func File(db *store.DB, path, outPath, trigger string, inPlace bool) (organize.Result, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return organize.Result{}, "", fmt.Errorf("read note %s: %w", path, err)
	}

	res := organize.Run(string(data))

	target := outPath
	if inPlace {
		target = path
	}
	if err := os.WriteFile(target, []byte(res.Output), 0o644); err != nil {
		return organize.Result{}, "", fmt.Errorf("write note %s: %w", target, err)
	}

	record(db, path, trigger, len(data), res)
	return res, target, nil
}

// Preview transforms the note at path without writing anything. The run is
// still journaled so history reflects read-only invocations.
func Preview(db *store.DB, path, trigger string) (organize.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return organize.Result{}, fmt.Errorf("read note %s: %w", path, err)
	}

	res := organize.Run(string(data))
	record(db, path, trigger, len(data), res)
	return res, nil
}

func record(db *store.DB, path, trigger string, bytesIn int, res organize.Result) {
	if db == nil {
		return
	}
	err := db.RecordRun(store.Run{
		Path:     path,
		Trigger:  trigger,
		BytesIn:  bytesIn,
		BytesOut: len(res.Output),
		Entries:  res.Entries,
		Void:     res.Void,
		W:        res.W,
		Other:    res.Other,
		Changed:  res.Changed,
		Hash:     store.HashText(res.Output),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] journal: %v\n", err)
	}
}
