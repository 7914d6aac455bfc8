// Package langdetect provides programming-language helpers for fenced code
// blocks: validating fence info strings against known languages and guessing
// a language for unlabelled code.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// fallback is returned when no language can be determined.
const fallback = "text"

// aliases maps common fence tags that go-enry does not resolve directly.
var aliases = map[string]string{
	"sh":    "bash",
	"bash":  "bash",
	"zsh":   "bash",
	"shell": "bash",
	"yml":   "yaml",
	"js":    "javascript",
	"ts":    "typescript",
	"py":    "python",
	"rb":    "ruby",
	"text":  "text",
	"plain": "text",
	"none":  "text",
}

// Known reports whether name is a recognized language identifier, either a
// common fence alias or a language go-enry knows about.
func Known(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if _, ok := aliases[name]; ok {
		return true
	}
	_, ok := enry.GetLanguageByAlias(name)
	return ok
}

// Normalize maps a fence info string to a canonical lowercase fence tag.
// Unknown names are returned lowercased and trimmed, not rejected.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	if lang, ok := enry.GetLanguageByAlias(name); ok {
		return fenceTag(lang)
	}
	return name
}

// Detect guesses the language of a code snippet. It tries the shebang line
// first, then the go-enry classifier restricted to languages that commonly
// appear in fenced blocks. Returns "text" when nothing is confident.
func Detect(content []byte) string {
	if len(strings.TrimSpace(string(content))) == 0 {
		return fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby", "Rust",
		"Java", "C", "C++", "SQL", "JSON", "YAML", "TOML", "HTML", "CSS",
		"Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return fallback
}

// fenceTag lowercases a go-enry language name into a fence tag, covering the
// handful of names whose conventional tag differs from the lowercased name.
func fenceTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	}
	return strings.ToLower(lang)
}
