package cmd

import (
	"fmt"

	"github.com/skillet-dev/skillet/internal/install"
	"github.com/spf13/cobra"
)

var (
	installName   string
	installForce  bool
	installDryRun bool
)

var installCmd = &cobra.Command{
	Use:   "install <source>",
	Short: "Install a skill",
	Long: `Install a skill from a local path, a git URL, or a GitHub shorthand.

Examples:
  # Install from a local directory
  skillet install ./my-skill

  # Install from a git repository
  skillet install git@github.com:owner/my-skill.git

  # Install from a GitHub repository
  skillet install owner/my-skill

  # Install one skill out of a larger repository
  skillet install anthropics/skills/document-skills/pdf

  # Preview without installing
  skillet install owner/my-skill --dry-run

  # Overwrite an existing install
  skillet install owner/my-skill --force`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installName, "name", "", "install under a different name")
	installCmd.Flags().BoolVar(&installForce, "force", false, "overwrite existing skill")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "show what would be installed without installing")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := resolveSkillsDir(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	fetcher, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}

	inst := install.New(dir, fetcher, logger)
	res, err := inst.Install(cmd.Context(), args[0], install.Options{
		Name:   installName,
		Force:  installForce,
		DryRun: installDryRun,
	})
	if err != nil {
		return err
	}

	if res.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Would install skill %q to %s\n", res.Name, res.Path)
		printSkillFiles(cmd, res.Files)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed skill %q to %s\n", res.Name, res.Path)
	return nil
}

// printSkillFiles prints the files that would be installed.
func printSkillFiles(cmd *cobra.Command, files []string) {
	fmt.Fprintln(cmd.OutOrStdout(), "\nFiles:")
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
}
