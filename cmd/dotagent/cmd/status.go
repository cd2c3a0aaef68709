package cmd

import (
	"fmt"

	"github.com/dotstack/dotagent/internal/install"
	"github.com/dotstack/dotagent/internal/target"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statusFormat string

var statusCmd = &cobra.Command{
	Use:   "status [target]",
	Short: "Show what is currently installed per target",
	Long: `Scan the destination roots and report the agents, skills, and hook
example files actually present. Scans both targets unless one is named.
Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "text", "output format (text or yaml)")
	rootCmd.AddCommand(statusCmd)
}

// targetStatus is the per-target report emitted by status.
type targetStatus struct {
	Target    string `yaml:"target"`
	Root      string `yaml:"root"`
	Agents    int    `yaml:"agents"`
	Skills    int    `yaml:"skills"`
	HookFiles int    `yaml:"hook_files"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	token := string(target.Both)
	if len(args) > 0 {
		token = args[0]
	}
	t, err := target.Parse(token)
	if err != nil {
		return err
	}

	var statuses []targetStatus
	for _, ct := range t.Expand() {
		layout, err := target.Resolve(ct, "")
		if err != nil {
			return err
		}
		tally, err := install.ScanDest(layout.Root)
		if err != nil {
			return err
		}
		statuses = append(statuses, targetStatus{
			Target:    string(ct),
			Root:      layout.Root,
			Agents:    tally.Agents,
			Skills:    tally.Skills,
			HookFiles: tally.HookFiles,
		})
	}

	out := cmd.OutOrStdout()

	switch statusFormat {
	case "yaml":
		data, err := yaml.Marshal(statuses)
		if err != nil {
			return fmt.Errorf("encoding status: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "text":
		for _, s := range statuses {
			fmt.Fprintf(out, "%s (%s)\n", s.Target, s.Root)
			fmt.Fprintf(out, "  agents:     %d\n", s.Agents)
			fmt.Fprintf(out, "  skills:     %d\n", s.Skills)
			fmt.Fprintf(out, "  hook files: %d\n", s.HookFiles)
		}
	default:
		return fmt.Errorf("unknown format %q: valid formats are [text yaml]", statusFormat)
	}

	return nil
}
