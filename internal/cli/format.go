// Package cli provides shared formatting helpers for CLI output.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sgx-labs/notetidy/internal/organize"
)

// ANSI color constants.
const (
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
	Dim    = "\033[2m"
	Bold   = "\033[1m"
	Reset  = "\033[0m"
)

// ShortenHome replaces $HOME prefix with ~.
func ShortenHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}

// FormatNumber adds comma separators (1234 -> "1,234").
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return FormatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}

// Summary renders a one-run result for humans. mode is the display mode from
// config: "quiet" renders nothing, "compact" a single line, anything else
// the full block.
func Summary(res organize.Result, wrotePath, mode string) string {
	switch mode {
	case "quiet":
		return ""
	case "compact":
		return fmt.Sprintf("%s: %d entries (%d/%d/%d) %s\n",
			ShortenHome(wrotePath), res.Entries, res.Void, res.W, res.Other, changedWord(res.Changed))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%sTidied%s %s\n", Bold, Reset, ShortenHome(wrotePath))
	fmt.Fprintf(&b, "  entries  %s\n", FormatNumber(res.Entries))
	fmt.Fprintf(&b, "  buckets  void=%d w=%d other=%d\n", res.Void, res.W, res.Other)
	fmt.Fprintf(&b, "  bytes    %s\n", FormatNumber(len(res.Output)))
	if res.Changed {
		fmt.Fprintf(&b, "  %schanged%s\n", Green, Reset)
	} else {
		fmt.Fprintf(&b, "  %salready tidy%s\n", Dim, Reset)
	}
	return b.String()
}

func changedWord(changed bool) string {
	if changed {
		return "changed"
	}
	return "unchanged"
}
