package filesystem

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreChecker interface for file ignore patterns
type IgnoreChecker interface {
	MatchesPath(path string) bool
}

// ExcludeList matches file base names against gitignore-style patterns.
// Built-in sidecar patterns and user patterns compile to separate matchers,
// so a negation in the user list cannot lift a built-in exclusion.
type ExcludeList struct {
	builtin []string
	user    []string
	sidecar *ignore.GitIgnore
	extra   *ignore.GitIgnore
}

// NewExcludeList compiles builtin and user patterns. Empty lists match nothing.
func NewExcludeList(builtin []string, user []string) *ExcludeList {
	return &ExcludeList{
		builtin: append([]string(nil), builtin...),
		user:    append([]string(nil), user...),
		sidecar: ignore.CompileIgnoreLines(builtin...),
		extra:   ignore.CompileIgnoreLines(user...),
	}
}

// MatchesPath reports whether the base name of path is excluded by either list
func (el *ExcludeList) MatchesPath(path string) bool {
	name := filepath.Base(path)
	if len(el.builtin) > 0 && el.sidecar.MatchesPath(name) {
		return true
	}
	return len(el.user) > 0 && el.extra.MatchesPath(name)
}

// Patterns returns a copy of all patterns, built-in first
func (el *ExcludeList) Patterns() []string {
	patterns := make([]string, 0, len(el.builtin)+len(el.user))
	patterns = append(patterns, el.builtin...)
	return append(patterns, el.user...)
}
