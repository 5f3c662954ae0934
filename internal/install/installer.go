// Package install resolves skill install sources and copies skills into
// the skills directory.
package install

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillet-dev/skillet/internal/errors"
	"github.com/skillet-dev/skillet/internal/fetch"
	"github.com/skillet-dev/skillet/internal/logging"
	"github.com/skillet-dev/skillet/internal/pathutil"
	"github.com/skillet-dev/skillet/internal/skill"
	"github.com/skillet-dev/skillet/internal/source"
)

// Options control a single install.
type Options struct {
	// Name overrides the derived skill name.
	Name string

	// Force overwrites an existing install of the same name.
	Force bool

	// DryRun resolves and validates but writes nothing.
	DryRun bool
}

// Result describes a completed (or dry-run) install.
type Result struct {
	Name   string
	Kind   source.Kind
	Path   string
	DryRun bool

	// Files lists the relative paths a dry run would install. Captured
	// before any staging clone is released, so it stays valid after
	// Install returns.
	Files []string
}

// Installer resolves sources and installs skills under a skills directory.
type Installer struct {
	skillsDir string
	expander  *pathutil.Expander
	fetcher   fetch.Fetcher
	store     *Store
	logger    *slog.Logger
}

// New creates an Installer. skillsDir must already be absolute.
func New(skillsDir string, fetcher fetch.Fetcher, logger *slog.Logger) *Installer {
	return &Installer{
		skillsDir: skillsDir,
		expander:  pathutil.NewExpander(),
		fetcher:   fetcher,
		store:     NewStore(skillsDir),
		logger:    logger,
	}
}

// Store returns the installer's lockfile store.
func (i *Installer) Store() *Store {
	return i.store
}

// Install resolves rawSource, validates the destination, and copies the
// skill into the skills directory.
func (i *Installer) Install(ctx context.Context, rawSource string, opts Options) (*Result, error) {
	kind := source.Classify(rawSource)
	log := logging.WithSource(i.logger, rawSource, string(kind))

	srcDir, cloneDir, rec, name, err := i.resolve(ctx, rawSource, kind)
	if cloneDir != "" {
		// Staging clones are read once and released, even when the
		// install fails partway or is a dry run.
		defer i.cleanStaging(log, cloneDir)
	}
	if err != nil {
		return nil, err
	}

	if opts.Name != "" {
		name = opts.Name
	} else if skill.HasManifest(srcDir) {
		// A manifest pins the install name when the user didn't.
		if s, err := skill.LoadFromDir(srcDir); err == nil && s.Skill.Name != "" {
			name = s.Skill.Name
		}
	}

	if err := skill.ValidateName(name); err != nil {
		return nil, errors.Wrapf(errors.CodeSourceUnsupported, err, "invalid skill name %q", name)
	}

	dest := filepath.Join(i.skillsDir, name)

	// The containment gate. Must run against the final destination right
	// before any write; everything above only produced strings.
	if !pathutil.WithinRoot(dest, i.skillsDir) {
		return nil, errors.PathUnsafe(dest, i.skillsDir)
	}

	if _, err := os.Stat(dest); err == nil {
		if !opts.Force {
			return nil, errors.Newf(errors.CodeIOCopyError,
				"skill %q already installed at %s (use --force to overwrite)", name, dest).
				WithDetail("path", dest)
		}
		if !opts.DryRun {
			if err := os.RemoveAll(dest); err != nil {
				return nil, errors.IOCopyError(srcDir, dest, err)
			}
		}
	}

	result := &Result{
		Name:   name,
		Kind:   kind,
		Path:   dest,
		DryRun: opts.DryRun,
	}

	if opts.DryRun {
		result.Files = listFiles(srcDir)
		return result, nil
	}

	if err := os.MkdirAll(i.skillsDir, 0755); err != nil {
		return nil, errors.IOCopyError(srcDir, dest, err)
	}

	if err := copyDir(srcDir, dest); err != nil {
		// No partial writes left behind.
		os.RemoveAll(dest)
		return nil, errors.IOCopyError(srcDir, dest, err)
	}

	rec.Source = rawSource
	rec.Kind = string(kind)
	rec.Path = dest
	if err := i.store.Add(name, rec); err != nil {
		return nil, err
	}

	logging.WithSkill(log, name).Info("installed skill", "path", dest)
	return result, nil
}

// resolve turns a classified source into a readable source directory,
// the lockfile record for it, and a default skill name. For remote
// sources it also returns the staging clone root, which the caller must
// release; the clone root is returned even on error so a failed subpath
// resolution does not strand the clone.
func (i *Installer) resolve(ctx context.Context, rawSource string, kind source.Kind) (string, string, InstalledSkill, string, error) {
	var rec InstalledSkill

	switch kind {
	case source.KindLocalPath:
		dir, err := i.expander.Expand(rawSource)
		if err != nil {
			return "", "", rec, "", err
		}
		info, err := os.Stat(dir)
		if err != nil {
			return "", "", rec, "", errors.IONotFound(dir)
		}
		if !info.IsDir() {
			return "", "", rec, "", errors.IONotFound(dir).WithDetail("reason", "not a directory")
		}
		return dir, "", rec, filepath.Base(dir), nil

	case source.KindGitURL:
		cloneDir, err := i.fetcher.Fetch(ctx, rawSource)
		if err != nil {
			return "", "", rec, "", err
		}
		rec.RepoURL = rawSource
		return cloneDir, cloneDir, rec, repoName(rawSource), nil

	case source.KindGitHubShorthand:
		sh := source.ParseShorthand(rawSource)
		if sh == nil {
			return "", "", rec, "", errors.SourceInvalidShorthand(rawSource)
		}
		cloneDir, err := i.fetcher.Fetch(ctx, sh.RepoURL)
		if err != nil {
			return "", "", rec, "", err
		}
		dir, err := fetch.ResolveSubdir(cloneDir, sh.Subpath)
		if err != nil {
			return "", cloneDir, rec, "", err
		}
		rec.RepoURL = sh.RepoURL
		rec.Subpath = sh.Subpath
		return dir, cloneDir, rec, shorthandName(sh), nil
	}

	return "", "", rec, "", errors.SourceUnsupported(rawSource)
}

// cleanStaging releases a staging clone once the install no longer
// reads from it. Best effort; a leftover clone is a warning, not a
// failed install.
func (i *Installer) cleanStaging(log *slog.Logger, dir string) {
	c, ok := i.fetcher.(fetch.Cleaner)
	if !ok {
		return
	}
	if err := c.Clean(dir); err != nil {
		log.Warn("failed to remove staging clone", "dir", dir, "error", err)
	}
}

// listFiles returns the relative paths under dir that an install would
// copy, with directories suffixed by a separator and .git skipped.
func listFiles(dir string) []string {
	var files []string
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || path == dir {
			return nil
		}
		rel, _ := filepath.Rel(dir, path)
		if info.IsDir() {
			if info.Name() == ".git" {
				return filepath.SkipDir
			}
			files = append(files, rel+string(filepath.Separator))
			return nil
		}
		files = append(files, rel)
		return nil
	})
	return files
}

// repoName derives a skill name from a git URL: the last path segment
// with any .git suffix stripped.
func repoName(repoURL string) string {
	name := strings.TrimSuffix(repoURL, "/")
	if idx := strings.LastIndexAny(name, "/:"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, ".git")
}

// shorthandName derives a skill name from a parsed shorthand: the last
// subpath segment, or the repository name when there is no subpath.
func shorthandName(sh *source.Shorthand) string {
	if sh.Subpath != "" {
		parts := strings.Split(sh.Subpath, "/")
		return parts[len(parts)-1]
	}
	return repoName(sh.RepoURL)
}

// copyDir recursively copies a skill directory, skipping .git.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Name() == ".git" {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file preserving its mode.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
