package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// lineOneRule flags line 1 of any non-empty file.
type lineOneRule struct {
	lint.BaseRule
}

func newLineOneRule() *lineOneRule {
	return &lineOneRule{BaseRule: lint.NewBaseRule("MD901", "flags the first line", nil, false)}
}

func (r *lineOneRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	if doc.LineCount() == 0 {
		return nil
	}
	return []lint.Violation{{Line: 1, Rule: r.ID(), Message: "first line"}}
}

func newRunner(cfg *config.Config) *Runner {
	registry := lint.NewRegistry()
	registry.Register(newLineOneRule())
	return New(lint.NewPipeline(lint.NewEngine(registry, cfg)))
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestDiscoverFiltersAndSorts(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.md":           "b\n",
		"a.md":           "a\n",
		"notes.markdown": "n\n",
		"readme.txt":     "t\n",
		"docs/guide.md":  "g\n",
		".hidden/x.md":   "x\n",
	})

	files, err := Discover(context.Background(), Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"a.md", "b.md", "docs/guide.md", "notes.markdown"}, names)
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"keep.md":          "k\n",
		"vendor/dep.md":    "d\n",
		"docs/drafts/w.md": "w\n",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/drafts/**"},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep.md", filepath.Base(files[0]))
}

func TestDiscoverIncludeGlobs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"readme.md":     "r\n",
		"docs/guide.md": "g\n",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		IncludeGlobs: []string{"docs/**"},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "guide.md", filepath.Base(files[0]))
}

func TestDiscoverExplicitFile(t *testing.T) {
	dir := writeTree(t, map[string]string{"doc.md": "d\n"})

	files, err := Discover(context.Background(), Options{
		Paths:      []string{"doc.md"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = Discover(context.Background(), Options{
		Paths:      []string{"missing.md"},
		WorkingDir: dir,
	})
	assert.Error(t, err, "explicit paths must exist")
}

func TestRunAggregatesInDiscoveryOrder(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"c.md": "text\n",
		"a.md": "text\n",
		"b.md": "text\n",
	})

	result, err := newRunner(nil).Run(context.Background(), Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 3, result.Stats.TotalViolations)
	assert.Equal(t, 3, result.Stats.FilesWithViolations)
	assert.True(t, result.HasViolations())
	assert.False(t, result.HasErrors())

	var order []string
	for _, outcome := range result.Files {
		order = append(order, filepath.Base(outcome.Path))
	}
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, order)
}

func TestRunEmptyDirectory(t *testing.T) {
	result, err := newRunner(nil).Run(context.Background(), Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.False(t, result.HasViolations())
}

func TestRunCancelled(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.md": "text\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(nil).Run(ctx, Options{WorkingDir: dir})
	assert.Error(t, err)
}

func TestLintResultFlattening(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.md": "text\n", "b.md": "text\n"})

	result, err := newRunner(nil).Run(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	lr := result.LintResult()
	assert.Equal(t, 2, lr.TotalViolations)
	assert.Len(t, lr.FileResults, 2)
}
