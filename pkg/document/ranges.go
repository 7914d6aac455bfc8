package document

import "sort"

// Range is a half-open byte range [Start, End) in the document content.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether the offset lies within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// CodeRanges returns the sorted, non-overlapping byte ranges that lie inside
// code: fenced and indented code blocks (fence lines included) and inline
// code spans (backtick delimiters included). Rules use this to suppress
// false positives, e.g. underscores inside code must not be mistaken for
// emphasis markers.
func (d *Document) CodeRanges() []Range {
	return d.codeRanges
}

// InCode reports whether the byte offset lies inside a code range.
func (d *Document) InCode(offset int) bool {
	idx := sort.Search(len(d.codeRanges), func(i int) bool {
		return d.codeRanges[i].End > offset
	})
	return idx < len(d.codeRanges) && d.codeRanges[idx].Contains(offset)
}

// buildCodeRanges collects code block and code span ranges from the event
// stream, then sorts and merges them so the result is non-overlapping.
func buildCodeRanges(events []Event) []Range {
	var ranges []Range
	for _, ev := range events {
		if ev.Kind == KindCodeBlock || ev.Kind == KindCodeSpan {
			ranges = append(ranges, ev.Range)
		}
	}
	if len(ranges) == 0 {
		return nil
	}

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})

	merged := ranges[:1]
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
