// Package pathutil provides path expansion and containment checks for
// skill installation.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/skillet-dev/skillet/internal/errors"
)

// HomeDirFunc returns the current user's home directory.
type HomeDirFunc func() (string, error)

// Expander resolves user-supplied path strings to absolute paths.
// The home-directory lookup is injectable so tests never depend on the
// real environment.
type Expander struct {
	homeDir HomeDirFunc
}

// NewExpander creates an Expander backed by os.UserHomeDir.
func NewExpander() *Expander {
	return &Expander{homeDir: os.UserHomeDir}
}

// NewExpanderWithHome creates an Expander with a custom home provider.
func NewExpanderWithHome(homeDir HomeDirFunc) *Expander {
	return &Expander{homeDir: homeDir}
}

// Expand resolves a path string to an absolute, lexically-normalized path.
// "~" and "~/..." resolve under the home directory; everything else
// resolves against the current working directory. The path does not need
// to exist. A failed home lookup is a CONFIG_001 error, never a silent
// fallback to a relative path.
func (e *Expander) Expand(source string) (string, error) {
	if source == "~" || strings.HasPrefix(source, "~/") {
		home, err := e.homeDir()
		if err != nil {
			return "", errors.ConfigNoHome(err)
		}
		if source == "~" {
			return home, nil
		}
		return filepath.Join(home, source[2:]), nil
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return "", err
	}
	return abs, nil
}
