// Package rules provides the built-in lint rules for mdlint.
//
// Rules are grouped by domain:
//
//   - Whitespace and layout: MD009 (trailing spaces), MD010 (hard tabs),
//     MD012 (multiple blank lines), MD047 (single trailing newline)
//   - Headings: MD001 (heading increment), MD018 (missing space after hash),
//     MD019 (multiple spaces after hash), MD025 (single h1),
//     MD026 (trailing punctuation)
//   - Lists: MD029 (ordered list item prefix)
//   - Line length: MD013
//   - Links: MD034 (bare URLs)
//   - Code blocks: MD040 (fenced code language)
//   - Emphasis: MD049 (emphasis style)
//
// Each rule embeds lint.BaseRule for its metadata and implements Check
// against the document model. Use NewDefaultRegistry to obtain a registry
// populated with all of them.
package rules
