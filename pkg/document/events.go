package document

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Kind classifies a structural element in the event stream.
type Kind int

const (
	KindHeading Kind = iota
	KindCodeBlock
	KindCodeSpan
	KindEmphasis
	KindStrong
	KindLink
	KindImage
	KindList
	KindListItem
	KindTable
	KindBlockquote
	KindParagraph
	KindHTMLBlock
	KindRawHTML
	KindText
)

var kindNames = map[Kind]string{
	KindHeading:    "Heading",
	KindCodeBlock:  "CodeBlock",
	KindCodeSpan:   "CodeSpan",
	KindEmphasis:   "Emphasis",
	KindStrong:     "Strong",
	KindLink:       "Link",
	KindImage:      "Image",
	KindList:       "List",
	KindListItem:   "ListItem",
	KindTable:      "Table",
	KindBlockquote: "Blockquote",
	KindParagraph:  "Paragraph",
	KindHTMLBlock:  "HTMLBlock",
	KindRawHTML:    "RawHTML",
	KindText:       "Text",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event is one (structural element, byte range) pair in the event stream.
// Block ranges are expanded to whole-line boundaries; code span and emphasis
// ranges include their delimiter characters.
type Event struct {
	Kind  Kind
	Range Range

	// Level is the heading level (1-6) or emphasis level, when applicable.
	Level int

	// Info is the fenced code block info string (language), when applicable.
	Info string

	// Fenced distinguishes fenced code blocks from indented ones.
	Fenced bool

	// Ordered reports whether a list event describes an ordered list.
	Ordered bool

	// Start is the first number of an ordered list.
	Start int
}

// Events returns the structural event stream in document order. The stream
// is derived from a deterministic parse of the immutable content, so it is
// the same sequence on every call.
func (d *Document) Events() []Event {
	return d.events
}

// newMarkdown configures the CommonMark parser with the GFM (tables,
// strikethrough, task lists, autolinks), footnote, and heading-attribute
// extensions.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(parser.WithAttribute()),
	)
}

func buildEvents(d *Document) []Event {
	if len(d.content) == 0 {
		return nil
	}

	source := []byte(d.content)
	root := newMarkdown().Parser().Parse(text.NewReader(source))

	var events []Event
	add := func(ev Event) {
		events = append(events, ev)
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if r, ok := blockRange(d, n); ok {
				add(Event{Kind: KindHeading, Range: r, Level: node.Level})
			}

		case *ast.FencedCodeBlock:
			if r, ok := fencedRange(d, node); ok {
				add(Event{Kind: KindCodeBlock, Range: r, Info: string(node.Language(source)), Fenced: true})
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			if r, ok := blockRange(d, n); ok {
				add(Event{Kind: KindCodeBlock, Range: r})
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeSpan:
			if r, ok := inlineRange(n); ok {
				add(Event{Kind: KindCodeSpan, Range: extendBackticks(d.content, r)})
			}
			return ast.WalkSkipChildren, nil

		case *ast.Emphasis:
			if r, ok := inlineRange(n); ok {
				kind := KindEmphasis
				if node.Level >= 2 {
					kind = KindStrong
				}
				add(Event{Kind: kind, Range: extendDelimiters(d.content, r, node.Level), Level: node.Level})
			}

		case *ast.Link:
			if r, ok := inlineRange(n); ok {
				add(Event{Kind: KindLink, Range: r})
			}

		case *ast.Image:
			if r, ok := inlineRange(n); ok {
				add(Event{Kind: KindImage, Range: r})
			}

		case *ast.List:
			if r, ok := containerRange(d, n); ok {
				add(Event{Kind: KindList, Range: r, Ordered: node.IsOrdered(), Start: node.Start})
			}

		case *ast.ListItem:
			if r, ok := containerRange(d, n); ok {
				add(Event{Kind: KindListItem, Range: r})
			}

		case *east.Table:
			if r, ok := containerRange(d, n); ok {
				add(Event{Kind: KindTable, Range: r})
			}

		case *ast.Blockquote:
			if r, ok := containerRange(d, n); ok {
				add(Event{Kind: KindBlockquote, Range: r})
			}

		case *ast.Paragraph:
			if r, ok := blockRange(d, n); ok {
				add(Event{Kind: KindParagraph, Range: r})
			}

		case *ast.HTMLBlock:
			if r, ok := blockRange(d, n); ok {
				add(Event{Kind: KindHTMLBlock, Range: r})
			}

		case *ast.RawHTML:
			if r, ok := segmentsRange(node.Segments); ok {
				add(Event{Kind: KindRawHTML, Range: r})
			}

		case *ast.Text:
			if node.Segment.Len() > 0 {
				add(Event{Kind: KindText, Range: Range{Start: node.Segment.Start, End: node.Segment.Stop}})
			}
		}

		return ast.WalkContinue, nil
	})

	return events
}

// blockRange computes a block node's byte range from its line segments,
// expanded to whole-line boundaries so leading markers ('#', '>', bullets)
// are covered.
func blockRange(d *Document, n ast.Node) (Range, bool) {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return Range{}, false
	}

	startLine, _ := d.OffsetToPosition(lines.At(0).Start)
	stop := lines.At(lines.Len() - 1).Stop
	endLine, _ := d.OffsetToPosition(stop - 1)

	return Range{Start: d.LineOffsetToAbsolute(startLine, 0), End: d.lineEnd(endLine)}, true
}

// containerRange handles container blocks (lists, items, blockquotes,
// tables) whose own Lines() may be empty: it falls back to the union of the
// descendants' text segments, expanded to line boundaries.
func containerRange(d *Document, n ast.Node) (Range, bool) {
	if r, ok := blockRange(d, n); ok {
		return r, true
	}
	r, ok := inlineRange(n)
	if !ok {
		return Range{}, false
	}
	startLine, _ := d.OffsetToPosition(r.Start)
	endLine, _ := d.OffsetToPosition(r.End - 1)
	return Range{Start: d.LineOffsetToAbsolute(startLine, 0), End: d.lineEnd(endLine)}, true
}

// inlineRange computes an inline node's byte range as the union of its
// descendant text segments.
func inlineRange(n ast.Node) (Range, bool) {
	start, end := -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			if start < 0 || t.Segment.Start < start {
				start = t.Segment.Start
			}
			if t.Segment.Stop > end {
				end = t.Segment.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	if start < 0 || end <= start {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

func segmentsRange(segments *text.Segments) (Range, bool) {
	if segments == nil || segments.Len() == 0 {
		return Range{}, false
	}
	return Range{Start: segments.At(0).Start, End: segments.At(segments.Len() - 1).Stop}, true
}

// fencedRange computes a fenced code block's range including the fence
// lines. Goldmark's segments cover only the content between the fences, so
// the range is expanded one line outward on each side where a fence line is
// present.
func fencedRange(d *Document, n *ast.FencedCodeBlock) (Range, bool) {
	var startLine, endLine int

	switch {
	case n.Info != nil:
		startLine, _ = d.OffsetToPosition(n.Info.Segment.Start)
		endLine = startLine
		if lines := n.Lines(); lines.Len() > 0 {
			endLine, _ = d.OffsetToPosition(lines.At(lines.Len()-1).Stop - 1)
		}
	case n.Lines().Len() > 0:
		lines := n.Lines()
		startLine, _ = d.OffsetToPosition(lines.At(0).Start)
		endLine, _ = d.OffsetToPosition(lines.At(lines.Len()-1).Stop - 1)
		if startLine > 1 && isFenceLine(d.lines[startLine-2]) {
			startLine--
		}
	default:
		return Range{}, false
	}

	if endLine < len(d.lines) && isFenceLine(d.lines[endLine]) {
		endLine++
	}

	return Range{Start: d.LineOffsetToAbsolute(startLine, 0), End: d.lineEnd(endLine)}, true
}

func isFenceLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// extendBackticks widens an inline code range to cover its delimiter runs.
func extendBackticks(content string, r Range) Range {
	for r.Start > 0 && content[r.Start-1] == '`' {
		r.Start--
	}
	for r.End < len(content) && content[r.End] == '`' {
		r.End++
	}
	return r
}

// extendDelimiters widens an emphasis range to cover up to level marker
// characters on each side.
func extendDelimiters(content string, r Range, level int) Range {
	for i := 0; i < level && r.Start > 0; i++ {
		c := content[r.Start-1]
		if c != '*' && c != '_' {
			break
		}
		r.Start--
	}
	for i := 0; i < level && r.End < len(content); i++ {
		c := content[r.End]
		if c != '*' && c != '_' {
			break
		}
		r.End++
	}
	return r
}
