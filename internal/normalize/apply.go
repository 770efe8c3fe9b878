package normalize

import (
	"strings"

	"github.com/sgx-labs/notetidy/internal/note"
)

// Apply returns a new entry with the header date rewritten to the earliest
// unchecked child date (when one exists) and every recognized date token
// re-annotated with its correct weekday. Entries that are empty, or not
// header entries, skip the header rewrite; their child lines are still
// canonicalized individually.
func Apply(e note.Entry) note.Entry {
	if e.Text() == "" {
		return e
	}

	lines := splitKeepEnds(e.Text())
	out := make([]string, 0, len(lines))

	start := 0
	if e.IsHeader() {
		out = append(out, rewriteHeader(lines[0], lines[1:]))
		start = 1
	}
	for _, line := range lines[start:] {
		out = append(out, canonicalizeChild(line))
	}

	return note.New(strings.Join(out, ""))
}

// UncheckedDates returns, in document order, the date of every unchecked
// child line in the entry. Checked children and lines without a recognizable
// date do not contribute.
func UncheckedDates(e note.Entry) []string {
	var dates []string
	lines := splitKeepEnds(e.Text())
	if len(lines) == 0 {
		return nil
	}
	for _, line := range lines[1:] {
		content, _ := cutLineEnd(line)
		m := childRe.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if checked := m[2] != ""; !checked {
			dates = append(dates, m[3])
		}
	}
	return dates
}

// rewriteHeader rebuilds a header line around its inferred date. Headers
// without the full tag+date shape pass through untouched, and their children
// are then not consulted for inference.
func rewriteHeader(header string, children []string) string {
	content, end := cutLineEnd(header)
	m := headerRe.FindStringSubmatch(content)
	if m == nil {
		return header
	}
	prefix, date, title := m[1], m[3], m[4]

	if earliest := earliestUnchecked(children); earliest != "" {
		date = earliest
	}

	line := prefix + " " + annotate(date)
	if title != "" {
		line += " " + title
	}
	return line + end
}

// earliestUnchecked returns the lexicographically smallest date among
// unchecked child lines, or "" when every child is checked or dateless.
// The fixed-width YYYY/MM/DD format makes lexicographic and chronological
// order identical.
func earliestUnchecked(children []string) string {
	best := ""
	for _, line := range children {
		content, _ := cutLineEnd(line)
		m := childRe.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if checked := m[2] != ""; checked {
			continue
		}
		if date := m[3]; best == "" || date < best {
			best = date
		}
	}
	return best
}

// canonicalizeChild rewrites a recognized child line into the canonical
// shape: indent, "- ", completion box, date token, single-spaced rest.
// Unrecognized lines pass through verbatim. The rewrite is idempotent.
func canonicalizeChild(line string) string {
	content, end := cutLineEnd(line)
	m := childRe.FindStringSubmatch(content)
	if m == nil {
		return line
	}
	indent, date, rest := m[1], m[3], m[4]

	box := "[]"
	if m[2] != "" {
		box = "[x]"
	}

	out := indent + "- " + box + " " + annotate(date)
	if rest != "" {
		out += " " + rest
	}
	return out + end
}

// splitKeepEnds splits text into lines retaining their "\n" terminators.
func splitKeepEnds(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// cutLineEnd separates a line's content from its terminator ("\n", "\r\n",
// or none on the final line).
func cutLineEnd(line string) (content, end string) {
	content = strings.TrimSuffix(line, "\n")
	if content != line {
		end = "\n"
	}
	if trimmed := strings.TrimSuffix(content, "\r"); trimmed != content {
		content = trimmed
		end = "\r" + end
	}
	return content, end
}
