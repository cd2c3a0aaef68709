package cmd

import (
	"fmt"

	"github.com/dotstack/dotagent/internal/install"
	"github.com/dotstack/dotagent/internal/target"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [target]",
	Short: "Install the definition set for a target",
	Long: `Install the root config document, agent files, skill files, and hook
examples for a target platform. Existing destination files are overwritten;
only the root config document is backed up first.

Examples:
  dotagent install              # install for opencode
  dotagent install claude       # install into ~/.claude
  dotagent install both         # opencode first, then claude`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	token := ""
	if len(args) > 0 {
		token = args[0]
	}
	t, err := target.Parse(token)
	if err != nil {
		return err
	}

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}

	ins := &install.Installer{
		SourceRoot: src,
		Out:        cmd.OutOrStdout(),
		Logger:     newLogger(cfg),
	}

	out := cmd.OutOrStdout()
	for _, ct := range t.Expand() {
		fmt.Fprintf(out, "Installing %s configuration...\n", ct)
		if _, err := ins.Run(ct); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	return nil
}
