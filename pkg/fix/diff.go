package fix

import (
	"fmt"
	"strings"
)

// Preview renders a compact line diff between before and after, used by
// dry-run output to show what a fix pass would change. The common prefix and
// suffix are trimmed and only the differing middle is shown.
func Preview(path, before, after string) string {
	if before == after {
		return ""
	}

	oldLines := SplitLines(before)
	newLines := SplitLines(after)

	// Trim common prefix.
	start := 0
	for start < len(oldLines) && start < len(newLines) && oldLines[start] == newLines[start] {
		start++
	}

	// Trim common suffix, without crossing the prefix.
	oldEnd, newEnd := len(oldLines), len(newLines)
	for oldEnd > start && newEnd > start && oldLines[oldEnd-1] == newLines[newEnd-1] {
		oldEnd--
		newEnd--
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s (fixed)\n", path, path)
	fmt.Fprintf(&b, "@@ line %d @@\n", start+1)
	for _, line := range oldLines[start:oldEnd] {
		fmt.Fprintf(&b, "-%s\n", line)
	}
	for _, line := range newLines[start:newEnd] {
		fmt.Fprintf(&b, "+%s\n", line)
	}
	return b.String()
}
