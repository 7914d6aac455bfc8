// Package fix provides the fix data model and the application engine that
// rewrites file content from a set of possibly-conflicting text edits.
package fix

// Fix describes a textual region to replace. It is advisory until applied.
//
// Lines are 1-indexed and inclusive on both ends. Columns are 1-indexed,
// inclusive, and count characters (runes), not bytes; a zero column means
// whole-line semantics. Column-addressed fixes apply within a single line
// (LineStart == LineEnd). Line-addressed fixes may span multiple lines and
// their replacement is split on line breaks and spliced in, so a fix can
// shrink or grow the line count.
type Fix struct {
	// LineStart is the first line of the region.
	LineStart int

	// LineEnd is the last line of the region.
	LineEnd int

	// ColumnStart is the first column of the region, or 0 for whole lines.
	ColumnStart int

	// ColumnEnd is the last column of the region, or 0 for whole lines.
	ColumnEnd int

	// Replacement is the text that replaces the region.
	Replacement string

	// Description explains the fix in human terms.
	Description string
}

// HasColumns reports whether the fix addresses a column range.
func (f Fix) HasColumns() bool {
	return f.ColumnStart > 0 && f.ColumnEnd > 0
}

// IsSingleLine reports whether the fix targets exactly one line.
func (f Fix) IsSingleLine() bool {
	return f.LineStart == f.LineEnd
}

// ReplaceLine returns a whole-line fix for a single line.
func ReplaceLine(line int, replacement, description string) Fix {
	return Fix{
		LineStart:   line,
		LineEnd:     line,
		Replacement: replacement,
		Description: description,
	}
}

// ReplaceLines returns a whole-line fix spanning [lineStart, lineEnd].
func ReplaceLines(lineStart, lineEnd int, replacement, description string) Fix {
	return Fix{
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		Replacement: replacement,
		Description: description,
	}
}

// ReplaceColumns returns a column-addressed fix within a single line.
// Columns are 1-indexed and inclusive.
func ReplaceColumns(line, colStart, colEnd int, replacement, description string) Fix {
	return Fix{
		LineStart:   line,
		LineEnd:     line,
		ColumnStart: colStart,
		ColumnEnd:   colEnd,
		Replacement: replacement,
		Description: description,
	}
}
