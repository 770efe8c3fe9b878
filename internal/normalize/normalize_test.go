package normalize

import (
	"testing"

	"github.com/sgx-labs/notetidy/internal/note"
)

func TestWeekdayFor_KnownDates(t *testing.T) {
	cases := []struct {
		date, want string
	}{
		{"2026/02/16", "月"},
		{"2026/02/10", "火"},
		{"2026/02/19", "木"},
		{"2026/02/20", "金"},
		{"2026/02/22", "日"},
	}
	for _, c := range cases {
		wd, ok := weekdayFor(c.date)
		if !ok {
			t.Fatalf("weekdayFor(%q) not ok", c.date)
		}
		if wd != c.want {
			t.Fatalf("weekdayFor(%q) = %q, want %q", c.date, wd, c.want)
		}
	}
}

func TestWeekdayFor_InvalidDates(t *testing.T) {
	for _, date := range []string{"2026/02/31", "2026/13/01", "2026/00/10", "abcd/ef/gh"} {
		if _, ok := weekdayFor(date); ok {
			t.Fatalf("weekdayFor(%q) unexpectedly ok", date)
		}
	}
}

func TestApply_HeaderDateFollowsEarliestUncheckedChild(t *testing.T) {
	in := note.New("## [] 2026/02/13 Task\n- [] 2026/02/19(Mon) note\n- [x] 2026/02/10(Tue) done\n")
	got := Apply(in).Text()
	want := "## [] 2026/02/19(木) Task\n- [] 2026/02/19(木) note\n- [x] 2026/02/10(火) done\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_PicksMinimumAcrossMultipleUncheckedChildren(t *testing.T) {
	in := note.New("## [] 2026/02/13 Task\n- [] 2026/02/25 later\n- [] 2026/02/18 sooner\n- [] 2026/02/21 mid\n")
	got := Apply(in)
	if fl := got.FirstLine(); fl != "## [] 2026/02/18(水) Task" {
		t.Fatalf("header = %q", fl)
	}
}

func TestApply_AllCheckedChildrenKeepHeaderDate(t *testing.T) {
	in := note.New("## [] 2026/02/13 Task\n- [x] 2026/02/10 done\n- [X] 2026/02/11 also done\n")
	got := Apply(in).Text()
	want := "## [] 2026/02/13(金) Task\n- [x] 2026/02/10(火) done\n- [x] 2026/02/11(水) also done\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_NoChildrenOnlyCorrectsHeaderWeekday(t *testing.T) {
	in := note.New("## [w] 2026/02/14(Mon) wrong weekday\n")
	got := Apply(in).Text()
	if got != "## [w] 2026/02/14(土) wrong weekday\n" {
		t.Fatalf("Apply = %q", got)
	}
}

func TestApply_BoxlessChildCountsAsUnchecked(t *testing.T) {
	in := note.New("## [] 2026/02/20 Task\n- 2026/02/16 old style child\n")
	got := Apply(in).Text()
	want := "## [] 2026/02/16(月) Task\n- [] 2026/02/16(月) old style child\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_MalformedHeaderSkipsInferenceButNormalizesChildren(t *testing.T) {
	in := note.New("## [] no date here\n- [] 2026/02/16 child\n")
	got := Apply(in).Text()
	want := "## [] no date here\n- [] 2026/02/16(月) child\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_InvalidDateDropsWeekdaySuffix(t *testing.T) {
	in := note.New("## [] 2026/02/31(Mon) impossible\n- [] 2026/02/31(火) also impossible\n")
	got := Apply(in).Text()
	want := "## [] 2026/02/31 impossible\n- [] 2026/02/31 also impossible\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_CanonicalizesChildSpacing(t *testing.T) {
	in := note.New("## [] 2026/02/16 Task\n  -   [X]   2026/02/16(月)    trailing   text\n")
	got := Apply(in).Text()
	want := "## [] 2026/02/16(月) Task\n  - [x] 2026/02/16(月) trailing   text\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_ChildWithoutTrailingTextHasNoTrailingSpace(t *testing.T) {
	in := note.New("## [] 2026/02/16 Task\n- [] 2026/02/16\n")
	got := Apply(in).Text()
	want := "## [] 2026/02/16(月) Task\n- [] 2026/02/16(月)\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_Idempotent(t *testing.T) {
	docs := []string{
		"## [] 2026/02/13 Task\n- [] 2026/02/19(Mon) note\n- [x] 2026/02/10(Tue) done\n",
		"## [w] 2026/02/14 B\n",
		"## [] no date here\n- text child\n",
		"",
	}
	for _, doc := range docs {
		once := Apply(note.New(doc))
		twice := Apply(once)
		if once.Text() != twice.Text() {
			t.Fatalf("not idempotent for %q: %q != %q", doc, once.Text(), twice.Text())
		}
	}
}

func TestApply_NonHeaderEntryChildLinesStillNormalized(t *testing.T) {
	in := note.New("- 2026/02/16 floating child\nplain line\n")
	got := Apply(in).Text()
	want := "- [] 2026/02/16(月) floating child\nplain line\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApply_EmptyEntryUnchanged(t *testing.T) {
	if got := Apply(note.New("")).Text(); got != "" {
		t.Fatalf("Apply(empty) = %q", got)
	}
}

func TestApply_PreservesMissingFinalNewline(t *testing.T) {
	in := note.New("## [] 2026/02/16 Task\n- [] 2026/02/16 child")
	got := Apply(in).Text()
	want := "## [] 2026/02/16(月) Task\n- [] 2026/02/16(月) child"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestUncheckedDates_DocumentOrderCheckedExcluded(t *testing.T) {
	e := note.New("## [] 2026/02/13 T\n- [] 2026/02/25 a\n- [x] 2026/02/01 done\n- 2026/02/18 b\nno date line\n")
	got := UncheckedDates(e)
	if len(got) != 2 || got[0] != "2026/02/25" || got[1] != "2026/02/18" {
		t.Fatalf("UncheckedDates = %#v", got)
	}
}
