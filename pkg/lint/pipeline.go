package lint

import (
	"context"
	"fmt"
	"os"

	"github.com/swanysimon/mdlint/pkg/fix"
	"github.com/swanysimon/mdlint/pkg/fsutil"
)

// maxFixPasses bounds the fix iteration. Each pass applies a non-conflicting
// subset of the current violations' fixes and re-lints; independent rules
// whose fixes overlap converge within a pass or two, and the bound keeps a
// pathological rule pair from looping forever.
const maxFixPasses = 5

// Pipeline processes one file end to end: read, lint, and (when fixing)
// apply the violations' fixes and write the corrected content back.
//
// Fix application for one file is strictly sequential relative to reading
// and writing that file: the goroutine processing a path owns it for the
// duration, so no file-level locking is needed beyond the runner's
// one-worker-per-path dispatch.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline creates a Pipeline around an engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessResult is the outcome of processing a single file.
type ProcessResult struct {
	// Result holds the file's violations from the initial lint pass.
	Result FileResult

	// Fixed is true when the file was rewritten on disk.
	Fixed bool

	// FixedContent is the corrected content when fixes were computed,
	// empty otherwise. In dry-run mode it is computed but not written.
	FixedContent string

	// Unfixed counts the violations still present in the content left on
	// disk: the re-lint count after fixes were written, the initial count
	// otherwise (lint-only, dry-run, or nothing to fix).
	Unfixed int

	// FixError records an out-of-bounds fix failure, which indicates a
	// rule defect. Content corrected by earlier passes is still written;
	// the error never aborts the overall run.
	FixError error
}

// ProcessFile reads, lints, and optionally fixes one file. I/O errors are
// returned to the caller; fix errors are recorded on the result.
//
// Fixing is iterative: each pass applies the non-conflicting subset of the
// current violations' fixes, then re-lints the corrected content. Fixes
// dropped for overlapping an applied one are re-emitted against the new
// content on the next pass, so independent rules converge without any rule
// knowing about another's edits.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*ProcessResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(raw)

	violations := p.Engine.LintContent(content)
	pr := &ProcessResult{
		Result:  FileResult{Path: path, Violations: violations},
		Unfixed: len(violations),
	}

	cfg := p.Engine.Config()
	if cfg == nil || (!cfg.Fix && !cfg.DryRun) {
		return pr, nil
	}

	current := content
	remaining := violations
	for pass := 0; pass < maxFixPasses; pass++ {
		fixes := (FileResult{Violations: remaining}).Fixes()
		if len(fixes) == 0 {
			break
		}

		corrected, applyErr := fix.Apply(current, fix.SelectNonConflicting(fixes))
		if applyErr != nil {
			pr.FixError = applyErr
			break
		}
		if corrected == current {
			break
		}
		current = corrected
		remaining = p.Engine.LintContent(current)
	}

	if current == content {
		return pr, nil
	}

	pr.FixedContent = current
	if cfg.DryRun {
		return pr, nil
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(current), 0); err != nil {
		return pr, fmt.Errorf("write %s: %w", path, err)
	}
	pr.Fixed = true
	pr.Unfixed = len(remaining)

	return pr, nil
}
