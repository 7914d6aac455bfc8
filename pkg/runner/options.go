// Package runner provides multi-file linting orchestration: file discovery,
// a per-file worker pool, and deterministic result aggregation.
package runner

// Options controls discovery and concurrency for a run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory for resolving relative Paths and
	// glob patterns. Empty means the process working directory.
	WorkingDir string

	// Extensions lists the file extensions (lowercase, leading dot)
	// treated as Markdown. Empty defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs restricts discovery to matching paths when non-empty.
	// Patterns are doublestar globs relative to WorkingDir.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories. Merged from
	// config ignore patterns and CLI flags.
	ExcludeGlobs []string

	// Jobs caps the number of concurrent workers. Zero or negative means
	// one worker per CPU.
	Jobs int
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
