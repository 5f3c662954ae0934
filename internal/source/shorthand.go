package source

import "strings"

// GitHubBase is the URL prefix shorthand repositories resolve against.
const GitHubBase = "https://github.com/"

// Shorthand is a parsed owner/repo[/subpath] reference.
type Shorthand struct {
	// RepoURL is the full https clone URL for the repository.
	RepoURL string

	// Subpath is the path of the skill within the repository.
	// Empty means the repository root is the skill.
	Subpath string
}

// ParseShorthand splits a GitHub shorthand into a repository URL and an
// optional subpath. It returns nil for single-token strings with no "/",
// which callers must treat as a resolution failure rather than fetching.
//
// ParseShorthand assumes the input was already classified as
// KindGitHubShorthand; it does not re-check for path or URL prefixes.
func ParseShorthand(source string) *Shorthand {
	parts := strings.Split(source, "/")
	if len(parts) < 2 {
		return nil
	}

	if len(parts) == 2 {
		return &Shorthand{RepoURL: GitHubBase + source}
	}

	return &Shorthand{
		RepoURL: GitHubBase + parts[0] + "/" + parts[1],
		Subpath: strings.Join(parts[2:], "/"),
	}
}
