package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyNoFixes(t *testing.T) {
	content := "line 1\nline 2\n"
	result, err := Apply(content, nil)
	require.NoError(t, err)
	assert.Equal(t, content, result)
}

func TestApplyColumnFixPrecision(t *testing.T) {
	result, err := Apply("hello world", []Fix{
		ReplaceColumns(1, 7, 11, "Rust", "replace word"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello Rust", result)
}

func TestApplyWholeLineFixes(t *testing.T) {
	fixes := []Fix{
		ReplaceLine(1, "FIRST", "rewrite line 1"),
		ReplaceLine(3, "THIRD", "rewrite line 3"),
	}

	result, err := Apply("line 1\nline 2\nline 3", fixes)
	require.NoError(t, err)
	assert.Equal(t, "FIRST\nline 2\nTHIRD", result)

	// Input order must not matter when no fixes conflict.
	reversed := []Fix{fixes[1], fixes[0]}
	result, err = Apply("line 1\nline 2\nline 3", reversed)
	require.NoError(t, err)
	assert.Equal(t, "FIRST\nline 2\nTHIRD", result)
}

func TestApplyMultiLineSplice(t *testing.T) {
	tests := []struct {
		name    string
		content string
		fix     Fix
		want    string
	}{
		{
			name:    "shrink two lines to one",
			content: "A\nB\nC",
			fix:     ReplaceLines(2, 3, "X", "collapse"),
			want:    "A\nX",
		},
		{
			name:    "grow one line to three",
			content: "A\nB\nC",
			fix:     ReplaceLine(2, "X\nY\nZ", "expand"),
			want:    "A\nX\nY\nZ\nC",
		},
		{
			name:    "replace with empty line",
			content: "A\nB\nC",
			fix:     ReplaceLine(2, "", "blank out"),
			want:    "A\n\nC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(tt.content, []Fix{tt.fix})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestApplyPreservesCRLF(t *testing.T) {
	result, err := Apply("line 1\r\nline 2\r\nline 3\r\n", []Fix{
		ReplaceLine(2, "SECOND", "rewrite"),
	})
	require.NoError(t, err)
	assert.Equal(t, "line 1\r\nSECOND\r\nline 3\r\n", result)
}

func TestApplyPreservesTrailingNewline(t *testing.T) {
	result, err := Apply("line 1\nline 2\n", []Fix{
		ReplaceLine(1, "FIRST", "rewrite"),
	})
	require.NoError(t, err)
	assert.Equal(t, "FIRST\nline 2\n", result)
}

func TestApplyNonOverlappingColumnsOnSameLine(t *testing.T) {
	// "hello world": columns 1-5 and 7-11 do not overlap.
	result, err := Apply("hello world", []Fix{
		ReplaceColumns(1, 1, 5, "howdy", "greeting"),
		ReplaceColumns(1, 7, 11, "globe", "target"),
	})
	require.NoError(t, err)
	assert.Equal(t, "howdy globe", result)
}

func TestApplyConflicts(t *testing.T) {
	tests := []struct {
		name  string
		fixes []Fix
	}{
		{
			name: "identical whole-line spans",
			fixes: []Fix{
				ReplaceLine(2, "X", "a"),
				ReplaceLine(2, "Y", "b"),
			},
		},
		{
			name: "overlapping column ranges",
			fixes: []Fix{
				ReplaceColumns(1, 1, 6, "X", "a"),
				ReplaceColumns(1, 4, 9, "Y", "b"),
			},
		},
		{
			name: "column fix against whole-line fix on same line",
			fixes: []Fix{
				ReplaceColumns(2, 1, 3, "X", "a"),
				ReplaceLine(2, "Y", "b"),
			},
		},
		{
			name: "multi-line fix sharing a line",
			fixes: []Fix{
				ReplaceLines(1, 3, "X", "a"),
				ReplaceColumns(3, 1, 2, "Y", "b"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "line 1\nline 2\nline 3"
			result, err := Apply(content, tt.fixes)

			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Empty(t, result, "conflicting fixes must not produce partial output")
		})
	}
}

func TestSelectNonConflicting(t *testing.T) {
	tests := []struct {
		name  string
		fixes []Fix
		want  int
	}{
		{
			name:  "empty input",
			fixes: nil,
			want:  0,
		},
		{
			name: "independent fixes all kept",
			fixes: []Fix{
				ReplaceLine(1, "X", "a"),
				ReplaceLine(3, "Y", "b"),
				ReplaceColumns(2, 1, 3, "Z", "c"),
			},
			want: 3,
		},
		{
			name: "column fix kept over later whole-line fix on same line",
			fixes: []Fix{
				ReplaceColumns(1, 8, 10, "", "trim tail"),
				ReplaceLine(1, "rewritten", "rewrite"),
			},
			want: 1,
		},
		{
			name: "multi-line collapse dropped against earlier per-line edits",
			fixes: []Fix{
				ReplaceColumns(2, 1, 3, "", "a"),
				ReplaceColumns(3, 1, 3, "", "b"),
				ReplaceLines(2, 3, "", "collapse"),
			},
			want: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			selected := SelectNonConflicting(tc.fixes)
			assert.Len(t, selected, tc.want)
			if len(tc.fixes) > 0 && tc.want > 0 {
				assert.Equal(t, tc.fixes[0], selected[0], "selection keeps input order")
			}

			// The selected subset must always apply cleanly.
			require.NoError(t, detectConflicts(selected))
		})
	}
}

func TestApplyOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		fix  Fix
	}{
		{name: "line past end", fix: ReplaceLine(9, "X", "a")},
		{name: "line range past end", fix: ReplaceLines(2, 9, "X", "a")},
		{name: "column past line end", fix: ReplaceColumns(1, 5, 20, "X", "a")},
		{name: "inverted columns", fix: ReplaceColumns(1, 5, 2, "X", "a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply("line 1\nline 2", []Fix{tt.fix})
			var oob *OutOfBoundsError
			require.ErrorAs(t, err, &oob)
		})
	}
}

func TestApplyColumnFixCountsRunes(t *testing.T) {
	// Each CJK character is one column even though it is three bytes.
	result, err := Apply("日本語 text", []Fix{
		ReplaceColumns(1, 1, 3, "JP", "replace word"),
	})
	require.NoError(t, err)
	assert.Equal(t, "JP text", result)
}

func TestApplyMixedLineAndColumnFixes(t *testing.T) {
	content := "# Title\nsome text here\nlast line"
	result, err := Apply(content, []Fix{
		ReplaceColumns(2, 6, 9, "prose", "word swap"),
		ReplaceLine(3, "LAST", "rewrite"),
	})
	require.NoError(t, err)
	assert.Equal(t, "# Title\nsome prose here\nLAST", result)
}

func TestSplitLinesRoundTrip(t *testing.T) {
	tests := []struct {
		content string
		want    []string
	}{
		{content: "", want: []string{""}},
		{content: "a", want: []string{"a"}},
		{content: "a\n", want: []string{"a", ""}},
		{content: "a\r\nb", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitLines(tt.content))
	}
}

func TestPreview(t *testing.T) {
	out := Preview("doc.md", "A\nB\nC", "A\nX\nC")
	assert.Contains(t, out, "--- doc.md")
	assert.Contains(t, out, "-B")
	assert.Contains(t, out, "+X")
	assert.Contains(t, out, "@@ line 2 @@")

	assert.Empty(t, Preview("doc.md", "same", "same"))
}
