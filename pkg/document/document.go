// Package document provides the read-only document model that every lint
// rule queries: the line index, the byte-offset coordinate system, the
// structural event stream, and the code-range index.
//
// A Document is built once per file content and is immutable thereafter.
// Fixes never mutate a Document; applying fixes produces a new string from
// which a fresh Document can be derived.
package document

import "sort"

// Document is an immutable view of one Markdown file's content.
type Document struct {
	content     string
	lines       []string
	lineOffsets []int
	events      []Event
	codeRanges  []Range
}

// New parses content into a Document. The parse is deterministic and
// side-effect free; the structural event stream and code ranges are derived
// once here so concurrent rule runs share them without coordination.
func New(content string) *Document {
	d := &Document{content: content}
	d.lines, d.lineOffsets = buildLines(content)
	d.events = buildEvents(d)
	d.codeRanges = buildCodeRanges(d.events)
	return d
}

// Content returns the full original text.
func (d *Document) Content() string {
	return d.content
}

// Lines returns the document's lines, split on line breaks with trailing
// carriage returns stripped. Index 0 is line 1. Callers must not modify the
// returned slice.
func (d *Document) Lines() []string {
	return d.lines
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of a 1-indexed line and whether it exists.
func (d *Document) Line(num int) (string, bool) {
	if num < 1 || num > len(d.lines) {
		return "", false
	}
	return d.lines[num-1], true
}

// OffsetToPosition converts a byte offset to 1-indexed line and column
// numbers. Out-of-range offsets clamp: negative to (1, 1), past the end to
// (last line, 1). Callers are expected to only pass offsets produced by the
// parse, so clamping is a defensive default rather than an error.
func (d *Document) OffsetToPosition(offset int) (line, column int) {
	if len(d.lines) == 0 || offset < 0 {
		return 1, 1
	}
	if offset >= len(d.content) {
		return len(d.lines), 1
	}

	// Find the last line starting at or before the offset.
	idx := sort.Search(len(d.lineOffsets), func(i int) bool {
		return d.lineOffsets[i] > offset
	}) - 1

	return idx + 1, offset - d.lineOffsets[idx] + 1
}

// LineOffsetToAbsolute converts a 1-indexed line number and a 0-indexed byte
// offset within that line to an absolute byte offset. The inverse helper for
// rules that compute line-relative positions and need to test membership in
// CodeRanges. Out-of-range lines clamp to the end of the content.
func (d *Document) LineOffsetToAbsolute(line, offsetInLine int) int {
	if line < 1 || line > len(d.lineOffsets) {
		return len(d.content)
	}
	return d.lineOffsets[line-1] + offsetInLine
}

// lineEnd returns the byte offset just past the content of a 1-indexed line,
// excluding its line break.
func (d *Document) lineEnd(line int) int {
	if line >= len(d.lineOffsets) {
		return len(d.content)
	}
	end := d.lineOffsets[line]
	if end > 0 && d.content[end-1] == '\n' {
		end--
	}
	if end > 0 && d.content[end-1] == '\r' {
		end--
	}
	return end
}

// buildLines splits content the way rules expect to see it: one entry per
// line, CRLF normalized away, and no synthetic entry after a trailing
// newline. Offsets record where each line starts in the original bytes.
func buildLines(content string) ([]string, []int) {
	var lines []string
	var offsets []int

	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		if end > start && content[end-1] == '\r' {
			end--
		}
		lines = append(lines, content[start:end])
		offsets = append(offsets, start)
		start = i + 1
	}

	if start < len(content) {
		lines = append(lines, content[start:])
		offsets = append(offsets, start)
	}

	return lines, offsets
}
