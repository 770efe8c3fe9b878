// Package normalize rewrites dates inside a single note entry: the header
// date is inferred from the earliest unchecked child, and every date token
// gets its weekday annotation recomputed from calendar arithmetic.
package normalize

import (
	"regexp"
	"time"
)

// Weekday annotations are emitted in the kanji vocabulary, Monday first.
var weekdays = [7]string{"月", "火", "水", "木", "金", "土", "日"}

// Either vocabulary is accepted on input; output is always kanji.
const weekdayClass = `(?:[月火水木金土日]|Mon|Tue|Wed|Thu|Fri|Sat|Sun)`

var (
	// "## [tag] 2026/02/13(木) タイトル" — prefix, tag, date, title.
	headerRe = regexp.MustCompile(
		`^(## \[(.*?)\])[ \t]*(\d{4}/\d{2}/\d{2})(?:\(` + weekdayClass + `\))?[ \t]*(.*)$`)

	// "  - [x] 2026/02/16(月) めも" — indent, box, date, rest. The box is
	// optional: older documents wrote children without one, which counts as
	// unchecked.
	childRe = regexp.MustCompile(
		`^([ \t]*)-[ \t]*(?:\[[ \t]*([xX]?)[ \t]*\][ \t]*)?(\d{4}/\d{2}/\d{2})(?:\(` + weekdayClass + `\))?[ \t]*(.*)$`)
)

// weekdayFor computes the kanji weekday for a YYYY/MM/DD date string.
// Returns false for anything that is not a valid calendar date.
func weekdayFor(date string) (string, bool) {
	t, err := time.Parse("2006/01/02", date)
	if err != nil {
		return "", false
	}
	return weekdays[(int(t.Weekday())+6)%7], true
}

// annotate appends the recomputed weekday to a date token. Invalid dates are
// returned bare: a wrong annotation is worse than none.
func annotate(date string) string {
	wd, ok := weekdayFor(date)
	if !ok {
		return date
	}
	return date + "(" + wd + ")"
}
