package rules

import "github.com/swanysimon/mdlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Whitespace and layout
	registry.Register(NewTrailingWhitespaceRule()) // MD009
	registry.Register(NewHardTabsRule())           // MD010
	registry.Register(NewMultipleBlankLinesRule()) // MD012
	registry.Register(NewFinalNewlineRule())       // MD047

	// Headings
	registry.Register(NewHeadingIncrementRule())      // MD001
	registry.Register(NewNoMissingSpaceATXRule())     // MD018
	registry.Register(NewNoMultipleSpaceATXRule())    // MD019
	registry.Register(NewSingleH1Rule())              // MD025
	registry.Register(NewNoTrailingPunctuationRule()) // MD026

	// Lists
	registry.Register(NewOrderedListPrefixRule()) // MD029

	// Line length
	registry.Register(NewMaxLineLengthRule()) // MD013

	// Links
	registry.Register(NewNoBareURLsRule()) // MD034

	// Code blocks
	registry.Register(NewCodeBlockLanguageRule()) // MD040

	// Emphasis
	registry.Register(NewEmphasisStyleRule()) // MD049
}

// NewDefaultRegistry returns a fresh registry populated with all built-in
// rules. There is no package-level shared registry; every caller owns its
// instance.
func NewDefaultRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return registry
}
