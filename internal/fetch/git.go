// Package fetch clones remote skill sources into a local staging area.
//
// Fetching is deliberately thin: it shells out to the git binary rather
// than implementing any git protocol, and it only ever produces a
// directory for the installer to validate and copy from.
package fetch

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/skillet-dev/skillet/internal/errors"
	"github.com/skillet-dev/skillet/internal/pathutil"
)

// Fetcher produces a local directory for a remote repository URL.
type Fetcher interface {
	// Fetch clones repoURL and returns the path of the clone.
	Fetch(ctx context.Context, repoURL string) (string, error)
}

// Cleaner removes staging directories produced by Fetch. Fetchers that
// stage clones on disk implement this so installers can release the
// staging dir once the skill has been copied out of it.
type Cleaner interface {
	Clean(dir string) error
}

// GitFetcher clones repositories with the git binary.
type GitFetcher struct {
	baseDir string
	logger  *slog.Logger
}

// NewGitFetcher creates a fetcher staging clones under the standard cache
// directory. Respects XDG_CACHE_HOME if set, otherwise uses ~/.cache.
func NewGitFetcher(logger *slog.Logger) (*GitFetcher, error) {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.ConfigNoHome(err)
		}
		cacheDir = filepath.Join(home, ".cache")
	}

	return &GitFetcher{
		baseDir: filepath.Join(cacheDir, "skillet", "clones"),
		logger:  logger,
	}, nil
}

// NewGitFetcherWithDir creates a fetcher staging clones under dir.
func NewGitFetcherWithDir(dir string, logger *slog.Logger) *GitFetcher {
	return &GitFetcher{baseDir: dir, logger: logger}
}

// Fetch clones repoURL into a fresh staging directory and returns its
// path. Clones are shallow; history is never needed for an install.
func (f *GitFetcher) Fetch(ctx context.Context, repoURL string) (string, error) {
	if err := os.MkdirAll(f.baseDir, 0755); err != nil {
		return "", errors.Wrap(errors.CodeFetchCloneFailed, "creating staging dir", err)
	}

	dir, err := os.MkdirTemp(f.baseDir, "clone-")
	if err != nil {
		return "", errors.Wrap(errors.CodeFetchCloneFailed, "creating staging dir", err)
	}

	url := NormalizeURL(repoURL)
	f.logger.Debug("cloning repository", "url", url, "dir", dir)

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, dir)
	if output, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		return "", errors.FetchCloneFailed(url, err).
			WithDetail("output", strings.TrimSpace(string(output)))
	}

	return dir, nil
}

// Clean removes a staging directory produced by Fetch.
func (f *GitFetcher) Clean(dir string) error {
	// Never remove anything outside our own staging area.
	if !pathutil.WithinRoot(dir, f.baseDir) {
		return errors.PathUnsafe(dir, f.baseDir)
	}
	return os.RemoveAll(dir)
}

// NormalizeURL converts a git source to a cloneable URL.
// Scheme-qualified URLs and ssh-style git@ remotes pass through; bare
// host paths get an https scheme.
func NormalizeURL(source string) string {
	if strings.Contains(source, "://") || strings.HasPrefix(source, "git@") {
		return source
	}
	return "https://" + source
}

// ResolveSubdir resolves a subpath inside a fetched clone, proving the
// result stays within the clone before anyone reads from it. A subpath
// like "../../etc" must fail here, not surface as a copy source.
func ResolveSubdir(cloneDir, subpath string) (string, error) {
	if subpath == "" {
		return cloneDir, nil
	}

	dir := filepath.Join(cloneDir, subpath)
	if !pathutil.WithinRoot(dir, cloneDir) {
		return "", errors.PathUnsafe(dir, cloneDir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", errors.FetchSubpathAbsent(cloneDir, subpath)
	}
	if !info.IsDir() {
		return "", errors.FetchSubpathAbsent(cloneDir, subpath).
			WithDetail("reason", "not a directory")
	}

	return dir, nil
}
