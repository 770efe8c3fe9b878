// Package note provides the entry data model and boundary splitting for
// notetidy note files.
package note

import (
	"regexp"
	"strings"
)

// HeaderMarker begins every entry header line.
const HeaderMarker = "## ["

var tagRe = regexp.MustCompile(`^## \[(.*?)\]`)

// Entry is an immutable slice of the note file, bounded by header markers.
// Transformations produce new Entry values; the wrapped text never changes.
type Entry struct {
	text string
}

// New wraps raw text in an Entry.
func New(text string) Entry {
	return Entry{text: text}
}

// Text returns the entry's raw text, line terminators included.
func (e Entry) Text() string {
	return e.text
}

// FirstLine returns the text up to the first line break, without the
// terminator. Empty entries yield "".
func (e Entry) FirstLine() string {
	line := e.text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSuffix(line, "\r")
}

// IsHeader reports whether the entry's first line begins with "## [".
func (e Entry) IsHeader() bool {
	return strings.HasPrefix(e.FirstLine(), HeaderMarker)
}

// Tag returns the bracketed label of a header entry with surrounding
// whitespace trimmed ("## []" -> "", "## [w]" -> "w"). The second return is
// false for non-header entries.
func (e Entry) Tag() (string, bool) {
	if !e.IsHeader() {
		return "", false
	}
	m := tagRe.FindStringSubmatch(e.FirstLine())
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Split divides raw text into entries. A new entry starts at every line that
// begins with "## ["; everything before the first such line is the preamble,
// which may be empty. The result is never empty: degenerate input yields a
// single empty Entry. Line order and content are preserved exactly.
func Split(text string) []Entry {
	var entries []Entry
	var cur strings.Builder

	for _, line := range splitAfterLines(text) {
		if strings.HasPrefix(line, HeaderMarker) {
			entries = append(entries, Entry{text: cur.String()})
			cur.Reset()
		}
		cur.WriteString(line)
	}

	if cur.Len() > 0 || len(entries) == 0 {
		entries = append(entries, Entry{text: cur.String()})
	}
	return entries
}

// Join concatenates entries back into a document. Entries carry their own
// trailing line breaks, so no separator is inserted.
func Join(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.text)
	}
	return b.String()
}

// splitAfterLines splits text into lines that keep their "\n" terminator.
// The final line may lack one.
func splitAfterLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
