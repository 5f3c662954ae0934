package pathutil

import (
	"path/filepath"
	"strings"
)

// WithinRoot reports whether target is base itself or a descendant of
// base. It must be called immediately before any write under base, with
// no path mutation in between.
//
// The check is done on path segments via filepath.Rel, never on string
// prefixes: "/a/skills-evil" shares the prefix "/a/skills" with base
// "/a/skills" but is a sibling, not a descendant. Both inputs are
// normalized to absolute lexical form first, so "..", ".", and relative
// inputs cannot smuggle a target outside base.
func WithinRoot(target, base string) bool {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		// No expressible relative path (different volumes on windows).
		return false
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	// Rel can only return an absolute path when there is no common
	// ancestor; treat that as outside.
	return !filepath.IsAbs(rel)
}
