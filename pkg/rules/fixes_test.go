package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// processFixes runs content through the full catalog with fixing enabled and
// returns the rewritten file content and the pipeline outcome. Rules emit
// fixes independently, so overlapping corrections on the same lines must
// converge across fix passes instead of failing the file.
func processFixes(t *testing.T, content string) (string, *lint.ProcessResult) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := config.Default()
	cfg.Fix = true
	pipeline := lint.NewPipeline(lint.NewEngine(NewDefaultRegistry(), cfg))

	pr, err := pipeline.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, pr.FixError)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data), pr
}

func TestFixTabAndTrailingSpacesOnOneLine(t *testing.T) {
	// MD010 rewrites the whole line while MD009 edits its tail; both must
	// land without a conflict aborting the file.
	fixed, pr := processFixes(t, "foo\tbar   \n")

	assert.Equal(t, "foo    bar\n", fixed)
	assert.True(t, pr.Fixed)
	assert.Equal(t, 0, pr.Unfixed)
	assert.Len(t, pr.Result.Violations, 2)
}

func TestFixBlankRunWithTrailingWhitespace(t *testing.T) {
	// MD009 edits the whitespace-only lines that MD012's multi-line
	// collapse also spans.
	fixed, pr := processFixes(t, "text\n   \n   \ntext\n")

	assert.Equal(t, "text\n\ntext\n", fixed)
	assert.True(t, pr.Fixed)
	assert.Equal(t, 0, pr.Unfixed)
}

func TestFixCleanFileUntouched(t *testing.T) {
	content := "# Title\n\nText.\n"
	fixed, pr := processFixes(t, content)

	assert.Equal(t, content, fixed)
	assert.False(t, pr.Fixed)
	assert.Equal(t, 0, pr.Unfixed)
}
