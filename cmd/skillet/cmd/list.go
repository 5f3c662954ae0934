package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/skillet-dev/skillet/internal/install"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Long: `List all skills installed in the skills directory.

The output shows:
  - SKILL:  Skill name
  - KIND:   Where it came from (local, git, github)
  - SOURCE: The original install source

Use --json for machine-readable output.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an installed skill for listing.
type listEntry struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Path   string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := resolveSkillsDir(cfg)
	if err != nil {
		return err
	}

	skills, err := install.NewStore(dir).List()
	if err != nil {
		return err
	}

	entries := make([]listEntry, 0, len(skills))
	for name, info := range skills {
		entries = append(entries, listEntry{
			Name:   name,
			Kind:   info.Kind,
			Source: info.Source,
			Path:   info.Path,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills installed.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun: skillet install <source>")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKILL\tKIND\tSOURCE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Kind, e.Source)
	}
	return w.Flush()
}
