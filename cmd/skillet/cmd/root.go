package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/skillet-dev/skillet/internal/config"
	"github.com/skillet-dev/skillet/internal/fetch"
	"github.com/skillet-dev/skillet/internal/logging"
	"github.com/skillet-dev/skillet/internal/pathutil"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose   bool
	skillsDir string
)

var rootCmd = &cobra.Command{
	Use:   "skillet",
	Short: "skillet - install agent skills from anywhere",
	Long: `skillet installs agent skills from local paths, git repositories,
or GitHub owner/repo shorthands into your skills directory.

Sources:
  ./my-skill                                Local directory
  git@github.com:owner/repo.git             Git URL (ssh)
  https://github.com/owner/repo             Git URL (https)
  owner/repo                                GitHub repository
  owner/repo/path/to/skill                  Skill within a GitHub repository`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&skillsDir, "skills-dir", "", "skills directory (default: from config, ~/.skillet/skills)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("skillet {{.Version}}\n")
}

// loadConfig loads and validates configuration for the current working
// directory.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFromDir(cwd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveSkillsDir returns the absolute skills directory, preferring the
// --skills-dir flag over config.
func resolveSkillsDir(cfg *config.Config) (string, error) {
	raw := skillsDir
	if raw == "" {
		raw = cfg.Paths.SkillsDir
	}
	return pathutil.NewExpander().Expand(raw)
}

// newLogger builds the logger from config; --verbose forces debug level.
func newLogger(cfg *config.Config) *slog.Logger {
	if verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	logger, _, err := logging.NewFromConfig(cfg)
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

// newFetcher builds the git fetcher, honoring a configured cache dir.
func newFetcher(cfg *config.Config, logger *slog.Logger) (fetch.Fetcher, error) {
	if cfg.Paths.CacheDir != "" {
		dir, err := pathutil.NewExpander().Expand(cfg.Paths.CacheDir)
		if err != nil {
			return nil, err
		}
		return fetch.NewGitFetcherWithDir(dir, logger), nil
	}
	return fetch.NewGitFetcher(logger)
}
