// Package organize reorders a note's entries: the preamble stays first, the
// rest are normalized, bucketed by tag and sorted by header line.
package organize

import (
	"sort"

	"github.com/sgx-labs/notetidy/internal/normalize"
	"github.com/sgx-labs/notetidy/internal/note"
)

// Result summarizes one tidy run over a document.
type Result struct {
	Output  string
	Entries int // non-preamble entries
	Void    int // tag ""
	W       int // tag "w"
	Other   int // any other tag, or no recognizable tag
	Changed bool
}

// Organize normalizes every non-preamble entry, partitions them into the
// void / w / other buckets and sorts each bucket by first line in descending
// order. The preamble is returned byte-identical at index 0. Bucket assembly
// order is fixed: preamble, void, w, other.
func Organize(entries []note.Entry) []note.Entry {
	out, _, _, _ := organize(entries)
	return out
}

// Run applies the full pipeline to raw text: split, normalize, bucket, sort,
// reassemble.
func Run(text string) Result {
	entries := note.Split(text)
	out, void, w, other := organize(entries)
	output := note.Join(out)
	return Result{
		Output:  output,
		Entries: len(entries) - 1,
		Void:    void,
		W:       w,
		Other:   other,
		Changed: output != text,
	}
}

func organize(entries []note.Entry) (out []note.Entry, void, w, other int) {
	if len(entries) == 0 {
		return []note.Entry{note.New("")}, 0, 0, 0
	}

	preamble := entries[0]

	var voidBucket, wBucket, otherBucket []note.Entry
	for _, e := range entries[1:] {
		e = normalize.Apply(e)
		switch tag, ok := e.Tag(); {
		case ok && tag == "":
			voidBucket = append(voidBucket, e)
		case ok && tag == "w":
			wBucket = append(wBucket, e)
		default:
			otherBucket = append(otherBucket, e)
		}
	}

	// Descending by first line; ties keep input order, so the overall
	// pipeline stays deterministic and idempotent.
	for _, bucket := range [][]note.Entry{voidBucket, wBucket, otherBucket} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].FirstLine() > bucket[j].FirstLine()
		})
	}

	out = make([]note.Entry, 0, len(entries))
	out = append(out, preamble)
	out = append(out, voidBucket...)
	out = append(out, wBucket...)
	out = append(out, otherBucket...)
	return out, len(voidBucket), len(wBucket), len(otherBucket)
}
