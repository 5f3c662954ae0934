package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	skerrors "github.com/skillet-dev/skillet/internal/errors"
)

func fakeHome(dir string) HomeDirFunc {
	return func() (string, error) { return dir, nil }
}

func TestExpand_Tilde(t *testing.T) {
	home := t.TempDir()
	e := NewExpanderWithHome(fakeHome(home))

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"tilde with path", "~/x/y", filepath.Join(home, "x", "y")},
		{"tilde only", "~", home},
		{"tilde deep path", "~/.claude/skills/pdf", filepath.Join(home, ".claude", "skills", "pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Expand(tt.source)
			if err != nil {
				t.Fatalf("Expand(%q) error = %v", tt.source, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestExpand_Relative(t *testing.T) {
	e := NewExpanderWithHome(fakeHome("/unused"))

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd error = %v", err)
	}

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"dot relative", "./x", filepath.Join(cwd, "x")},
		{"parent relative", "../x", filepath.Join(filepath.Dir(cwd), "x")},
		{"bare name", "x", filepath.Join(cwd, "x")},
		{"dot segments collapsed", "./a/./b/../c", filepath.Join(cwd, "a", "c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Expand(tt.source)
			if err != nil {
				t.Fatalf("Expand(%q) error = %v", tt.source, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestExpand_AbsoluteIsFixedPoint(t *testing.T) {
	e := NewExpanderWithHome(fakeHome("/unused"))

	abs := filepath.Join(t.TempDir(), "skill")
	got, err := e.Expand(abs)
	if err != nil {
		t.Fatalf("Expand error = %v", err)
	}
	if got != abs {
		t.Errorf("Expand(%q) = %q, want input unchanged", abs, got)
	}

	// Expanding an already-expanded path changes nothing.
	again, err := e.Expand(got)
	if err != nil {
		t.Fatalf("Expand error = %v", err)
	}
	if again != got {
		t.Errorf("Expand not idempotent: %q -> %q", got, again)
	}
}

func TestExpand_HomeLookupFails(t *testing.T) {
	e := NewExpanderWithHome(func() (string, error) {
		return "", os.ErrNotExist
	})

	_, err := e.Expand("~/x")
	if err == nil {
		t.Fatal("Expand(~/x) expected error when home lookup fails")
	}
	if !skerrors.HasCode(err, skerrors.CodeConfigNoHome) {
		t.Errorf("error code = %q, want %q", skerrors.Code(err), skerrors.CodeConfigNoHome)
	}

	// Non-tilde paths never touch the home provider.
	if _, err := e.Expand("./x"); err != nil {
		t.Errorf("Expand(./x) error = %v, want nil", err)
	}
}
