package rules

import (
	"strings"

	"github.com/swanysimon/mdlint/pkg/document"
)

// codeBlockLines returns the set of 1-indexed line numbers covered by code
// block events (fenced and indented, fence lines included).
func codeBlockLines(doc *document.Document) map[int]bool {
	lines := make(map[int]bool)
	for _, ev := range doc.Events() {
		if ev.Kind != document.KindCodeBlock {
			continue
		}
		start, end := eventLineSpan(doc, ev)
		for n := start; n <= end; n++ {
			lines[n] = true
		}
	}
	return lines
}

// eventLineSpan returns the 1-indexed first and last line an event covers.
func eventLineSpan(doc *document.Document, ev document.Event) (int, int) {
	start, _ := doc.OffsetToPosition(ev.Range.Start)
	end := start
	if ev.Range.End > ev.Range.Start {
		end, _ = doc.OffsetToPosition(ev.Range.End - 1)
	}
	return start, end
}

// leadingWhitespace returns the run of spaces and tabs at the start of line.
func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func countLeading(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
