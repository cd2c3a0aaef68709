package cmd

import (
	"fmt"

	"github.com/dotstack/dotagent/internal/install"
	"github.com/dotstack/dotagent/internal/target"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List agents and skills available in the source tree",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, src, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, ct := range target.Both.Expand() {
		layout, err := target.Resolve(ct, "")
		if err != nil {
			return err
		}

		inv, err := install.ScanSource(src, layout.AgentsSource, layout.SkillsSource)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s (%s/, %s/):\n", ct, layout.AgentsSource, layout.SkillsSource)
		if len(inv.Agents) == 0 && len(inv.Skills) == 0 {
			fmt.Fprintln(out, "  (nothing found)")
			continue
		}
		for _, name := range inv.Agents {
			fmt.Fprintf(out, "  agent  %s\n", name)
		}
		for _, name := range inv.Skills {
			fmt.Fprintf(out, "  skill  %s\n", name)
		}
		fmt.Fprintln(out)
	}

	return nil
}
