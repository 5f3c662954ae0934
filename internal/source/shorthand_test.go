package source

import "testing"

func TestParseShorthand(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		wantNil     bool
		wantRepoURL string
		wantSubpath string
	}{
		{
			name:        "owner and repo",
			source:      "owner/repo",
			wantRepoURL: "https://github.com/owner/repo",
			wantSubpath: "",
		},
		{
			name:        "single subpath segment",
			source:      "owner/repo/path",
			wantRepoURL: "https://github.com/owner/repo",
			wantSubpath: "path",
		},
		{
			name:        "deep subpath",
			source:      "owner/repo/a/b/c",
			wantRepoURL: "https://github.com/owner/repo",
			wantSubpath: "a/b/c",
		},
		{
			name:        "skills repo scenario",
			source:      "anthropics/skills/document-skills/pdf",
			wantRepoURL: "https://github.com/anthropics/skills",
			wantSubpath: "document-skills/pdf",
		},
		{
			name:    "single token",
			source:  "single",
			wantNil: true,
		},
		{
			name:    "empty string",
			source:  "",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseShorthand(tt.source)

			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseShorthand(%q) = %+v, want nil", tt.source, got)
				}
				return
			}

			if got == nil {
				t.Fatalf("ParseShorthand(%q) = nil, want non-nil", tt.source)
			}
			if got.RepoURL != tt.wantRepoURL {
				t.Errorf("RepoURL = %q, want %q", got.RepoURL, tt.wantRepoURL)
			}
			if got.Subpath != tt.wantSubpath {
				t.Errorf("Subpath = %q, want %q", got.Subpath, tt.wantSubpath)
			}
		})
	}
}
