// Package source classifies and parses skill install sources.
//
// An install source is whatever string the user hands to `skillet install`:
// a local filesystem path, a git repository URL, or a GitHub owner/repo
// shorthand. Classification decides which of the three it is; the shorthand
// parser splits owner/repo[/subpath] strings into a fetchable repository
// URL and a path within the repository.
package source

import (
	"path/filepath"
	"strings"
)

// Kind identifies what an install source string refers to.
type Kind string

const (
	// KindLocalPath is a path on the local filesystem.
	KindLocalPath Kind = "local"

	// KindGitURL is a cloneable git repository URL.
	KindGitURL Kind = "git"

	// KindGitHubShorthand is a bare owner/repo[/subpath] reference.
	KindGitHubShorthand Kind = "github"
)

// rule pairs a match predicate with the kind it selects.
type rule struct {
	match func(string) bool
	kind  Kind
}

// rules is evaluated first-match-wins. Order is load-bearing: a local
// path could in principle also satisfy the git test (e.g. "./vendor.git"),
// and must classify as local rather than become a remote fetch target.
var rules = []rule{
	{isLocalPath, KindLocalPath},
	{isGitURL, KindGitURL},
}

// Classify returns the Kind of an install source string.
// It is total: anything that matches neither the local-path nor the
// git-URL predicates falls through to KindGitHubShorthand, so a bare
// "owner/repo" needs no special casing. Strings that are not actually
// valid shorthands are caught later by ParseShorthand returning nil.
func Classify(source string) Kind {
	for _, r := range rules {
		if r.match(source) {
			return r.kind
		}
	}
	return KindGitHubShorthand
}

// localPrefixes are the relative/home prefixes that mark a string as a
// filesystem path. Windows-style ".\" and "..\" are recognized on every
// platform so a pasted Windows path never turns into a fetch.
var localPrefixes = []string{"/", "./", "../", "~/", `.\`, `..\`}

func isLocalPath(source string) bool {
	for _, prefix := range localPrefixes {
		if strings.HasPrefix(source, prefix) {
			return true
		}
	}
	// Covers drive-letter paths and other platform absolute forms.
	return filepath.IsAbs(source)
}

var gitPrefixes = []string{"git@", "git://", "http://", "https://"}

func isGitURL(source string) bool {
	for _, prefix := range gitPrefixes {
		if strings.HasPrefix(source, prefix) {
			return true
		}
	}
	return strings.HasSuffix(source, ".git")
}
