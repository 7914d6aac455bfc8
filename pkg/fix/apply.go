package fix

import (
	"sort"
	"strings"
)

// Apply applies a set of fixes to content and returns the corrected content.
//
// Fixes originate independently from unrelated rules, so Apply normalizes
// their order internally: the result is independent of input order. Before
// any mutation, all pairs are checked for conflicts; if any pair conflicts,
// Apply fails and the content is untouched. Fixes are then applied from the
// bottom of the file upward and from right to left within a line, so an
// edit's target coordinates stay valid until the moment it is applied.
//
// The original line-ending convention is preserved: if the content contains
// any "\r\n", the output is joined with "\r\n", otherwise with "\n". This is
// a whole-file decision.
func Apply(content string, fixes []Fix) (string, error) {
	if len(fixes) == 0 {
		return content, nil
	}

	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}

	if err := detectConflicts(fixes); err != nil {
		return "", err
	}

	sorted := make([]Fix, len(fixes))
	copy(sorted, fixes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LineStart != sorted[j].LineStart {
			return sorted[i].LineStart > sorted[j].LineStart
		}
		return sorted[i].ColumnStart > sorted[j].ColumnStart
	})

	lines := SplitLines(content)

	for _, f := range sorted {
		var err error
		lines, err = applyOne(lines, f)
		if err != nil {
			return "", err
		}
	}

	return strings.Join(lines, eol), nil
}

// SplitLines splits content on "\n" and strips a trailing "\r" from each
// line. Unlike a text-oriented split, a trailing newline yields a final
// empty entry so that rejoining round-trips the original byte-for-byte.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SelectNonConflicting returns the subset of fixes that can be applied
// together, keeping input order and greedily dropping any fix that conflicts
// with one already kept.
//
// Rules emit fixes independently, so overlaps between them are legitimate
// (two rules correcting the same line, or a multi-line collapse spanning
// lines another rule also edits). Selection guarantees one application pass
// always makes progress; re-linting the corrected content surfaces whatever
// the dropped fixes addressed.
func SelectNonConflicting(fixes []Fix) []Fix {
	selected := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		ok := true
		for _, kept := range selected {
			if conflicts(kept, f) {
				ok = false
				break
			}
		}
		if ok {
			selected = append(selected, f)
		}
	}
	return selected
}

// detectConflicts checks every pair of fixes before any mutation happens.
func detectConflicts(fixes []Fix) error {
	for i := range fixes {
		for j := i + 1; j < len(fixes); j++ {
			if conflicts(fixes[i], fixes[j]) {
				return &ConflictError{First: fixes[i], Second: fixes[j]}
			}
		}
	}
	return nil
}

// conflicts reports whether two fixes cannot both be applied.
//
// Two fixes conflict when their line spans intersect. For two column-addressed
// fixes on the exact same single line, the conflict narrows to column-range
// overlap, so non-overlapping edits to one line are allowed. Column-less
// fixes are conservatively treated as claiming the whole span, and multi-line
// fixes sharing any line always conflict.
func conflicts(a, b Fix) bool {
	if a.LineEnd < b.LineStart || b.LineEnd < a.LineStart {
		return false
	}

	if a.IsSingleLine() && b.IsSingleLine() && a.LineStart == b.LineStart &&
		a.HasColumns() && b.HasColumns() {
		return a.ColumnStart <= b.ColumnEnd && b.ColumnStart <= a.ColumnEnd
	}

	return true
}

func applyOne(lines []string, f Fix) ([]string, error) {
	if f.IsSingleLine() && f.HasColumns() {
		return applyColumnFix(lines, f)
	}
	return applyLineFix(lines, f)
}

// applyColumnFix splices the replacement between the untouched prefix and
// suffix of one line. Columns count characters, not bytes.
func applyColumnFix(lines []string, f Fix) ([]string, error) {
	if f.LineStart < 1 || f.LineStart > len(lines) {
		return nil, &OutOfBoundsError{Fix: f, Reason: "line exceeds line count"}
	}
	if f.ColumnEnd < f.ColumnStart {
		return nil, &OutOfBoundsError{Fix: f, Reason: "column end precedes column start"}
	}

	runes := []rune(lines[f.LineStart-1])
	if f.ColumnEnd > len(runes) {
		return nil, &OutOfBoundsError{Fix: f, Reason: "column exceeds line length"}
	}

	lines[f.LineStart-1] = string(runes[:f.ColumnStart-1]) + f.Replacement + string(runes[f.ColumnEnd:])
	return lines, nil
}

// applyLineFix replaces the closed line range [LineStart, LineEnd] wholesale
// with the replacement split on line breaks. The line count may shrink or
// grow; fixes applied later target strictly earlier lines, so their
// coordinates are unaffected.
func applyLineFix(lines []string, f Fix) ([]string, error) {
	if f.LineStart < 1 || f.LineEnd < f.LineStart || f.LineEnd > len(lines) {
		return nil, &OutOfBoundsError{Fix: f, Reason: "line range exceeds line count"}
	}

	replacement := SplitLines(f.Replacement)

	out := make([]string, 0, len(lines)-(f.LineEnd-f.LineStart+1)+len(replacement))
	out = append(out, lines[:f.LineStart-1]...)
	out = append(out, replacement...)
	out = append(out, lines[f.LineEnd:]...)
	return out, nil
}
