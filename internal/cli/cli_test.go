package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInfo() BuildInfo {
	return BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-01"}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// lintDir creates a directory with a VCS marker so config discovery cannot
// escape into the surrounding filesystem, then chdirs into it.
func lintDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
	return dir
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mdlint 1.2.3")
	assert.Contains(t, out, "abc1234")
}

func TestRulesCommandText(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "MD009")
	assert.Contains(t, out, "MD047")
	assert.Contains(t, out, "supports --fix")
}

func TestRulesCommandJSON(t *testing.T) {
	out, err := execute(t, "rules", "--format", "json")
	require.NoError(t, err)

	var infos []ruleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.NotEmpty(t, infos)
	assert.Equal(t, "MD001", infos[0].ID)
}

func TestLintCleanFile(t *testing.T) {
	lintDir(t, map[string]string{"doc.md": "# Title\n\nText.\n"})

	out, err := execute(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "no issues found")
}

func TestLintFindsViolations(t *testing.T) {
	lintDir(t, map[string]string{"doc.md": "# Title\n\nText.  \n"})

	out, err := execute(t, "lint")
	assert.ErrorIs(t, err, errViolationsFound)
	assert.Contains(t, out, "MD009")
}

func TestLintFixResolvesViolations(t *testing.T) {
	dir := lintDir(t, map[string]string{"doc.md": "# Title\n\nText.  \n"})

	_, err := execute(t, "lint", "--fix")
	require.NoError(t, err, "a fully fixed run exits clean")

	fixed, err := os.ReadFile(filepath.Join(dir, "doc.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nText.\n", string(fixed))
}

func TestLintDryRunDoesNotWrite(t *testing.T) {
	content := "# Title\n\nText.  \n"
	dir := lintDir(t, map[string]string{"doc.md": content})

	_, err := execute(t, "lint", "--fix", "--dry-run")
	require.NoError(t, err)

	unchanged, err := os.ReadFile(filepath.Join(dir, "doc.md"))
	require.NoError(t, err)
	assert.Equal(t, content, string(unchanged))
}

func TestLintDisableRule(t *testing.T) {
	lintDir(t, map[string]string{"doc.md": "# Title\n\nText.  \n"})

	_, err := execute(t, "lint", "--disable", "MD009")
	assert.NoError(t, err)
}

func TestLintJSONFormat(t *testing.T) {
	lintDir(t, map[string]string{"doc.md": "# Title\n\nText.  \n"})

	out, err := execute(t, "lint", "--format", "json")
	assert.ErrorIs(t, err, errViolationsFound)

	var decoded struct {
		TotalErrors int `json:"total_errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.TotalErrors)
}

func TestLintBadFormatIsUsageError(t *testing.T) {
	lintDir(t, map[string]string{"doc.md": "# Title\n"})

	_, err := execute(t, "lint", "--format", "csv")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, exitCodeForError(err))
}

func TestDefaultToLint(t *testing.T) {
	rootCmd := NewRootCommand(testInfo())

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{}, []string{"lint"}},
		{[]string{"docs/"}, []string{"lint", "docs/"}},
		{[]string{"--fix", "docs/"}, []string{"lint", "--fix", "docs/"}},
		{[]string{"rules"}, []string{"rules"}},
		{[]string{"version"}, []string{"version"}},
		{[]string{"--help"}, []string{"--help"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, defaultToLint(rootCmd, tc.args), "args %v", tc.args)
	}
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCodeForError(nil))
	assert.Equal(t, ExitViolations, exitCodeForError(errViolationsFound))
	assert.Equal(t, ExitUsage, exitCodeForError(&usageError{err: errors.New("bad flag")}))
	assert.Equal(t, ExitError, exitCodeForError(errors.New("boom")))
}
