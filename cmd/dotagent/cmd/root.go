package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dotstack/dotagent/internal/config"
	"github.com/dotstack/dotagent/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose   bool
	sourceDir string
)

var rootCmd = &cobra.Command{
	Use:   "dotagent [target]",
	Short: "Install agent and skill definitions for OpenCode and Claude Code",
	Long: `dotagent installs a source-of-truth set of agent personas, skills, a root
config document, and hook example scripts into the configuration layouts of
two assistant platforms.

Targets:
  opencode   install into ~/.config/opencode (default)
  claude     install into ~/.claude
  both       install for opencode, then claude

Running dotagent with no subcommand installs for the given (or default)
target, the same as 'dotagent install'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runInstall,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&sourceDir, "source", "", "source tree root (default: current directory)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("dotagent {{.Version}}\n")
}

// loadConfig loads dotagent.toml from the source directory, falling back
// to defaults when absent.
func loadConfig() (*config.Config, string, error) {
	dir := sourceDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadFromDir(abs)
	if err != nil {
		return nil, "", err
	}
	return cfg, cfg.SourceRoot(abs), nil
}

// newLogger builds the logger from config, with --verbose forcing debug.
func newLogger(cfg *config.Config) *slog.Logger {
	if verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	return logging.NewFromConfig(cfg)
}
