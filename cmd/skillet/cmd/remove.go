package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/skillet-dev/skillet/internal/install"
	"github.com/skillet-dev/skillet/internal/pathutil"
	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <skill-name>",
	Short: "Remove an installed skill",
	Long: `Remove an installed skill from the skills directory.

Examples:
  skillet remove pdf
  skillet remove pdf --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := resolveSkillsDir(cfg)
	if err != nil {
		return err
	}

	store := install.NewStore(dir)
	info, err := store.Get(name)
	if err != nil {
		return err
	}
	if info == nil {
		return fmt.Errorf("skill %q is not installed", name)
	}

	if !removeYes {
		fmt.Fprintf(cmd.OutOrStdout(), "Remove skill %q from %s? [y/N] ", name, info.Path)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if !scanner.Scan() {
			return nil
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	// The tracked path must still be a strict child of the skills dir
	// before we delete anything; a tampered lockfile must not become an
	// rm -rf of the skills dir or anything outside it.
	if info.Path == dir || !pathutil.WithinRoot(info.Path, dir) {
		return fmt.Errorf("refusing to remove %s: outside skills directory %s", info.Path, dir)
	}

	if err := os.RemoveAll(info.Path); err != nil {
		return fmt.Errorf("removing skill files: %w", err)
	}

	if err := store.Remove(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed skill %q\n", name)
	return nil
}
