// Package target resolves installation targets to their destination layouts.
// Each supported AI harness keeps its configuration in a different place and
// reads the source tree through differently named subdirectories.
package target

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotstack/dotagent/internal/errors"
)

// Target identifies an installation flavor.
type Target string

const (
	// OpenCode installs into ~/.config/opencode.
	OpenCode Target = "opencode"

	// Claude installs into ~/.claude.
	Claude Target = "claude"

	// Both fans out to OpenCode and Claude, in that order.
	Both Target = "both"
)

// Default is the target used when none is given on the command line.
const Default = OpenCode

// Layout describes where a concrete target reads from and writes to.
type Layout struct {
	Target Target

	// Root is the absolute destination root for this target.
	Root string

	// AgentsSource and SkillsSource are the source subdirectory names
	// this target reads agents and skills from. The two formats keep
	// parallel source trees, so the names differ per target.
	AgentsSource string
	SkillsSource string

	// ConfigName is the filename the root config document is installed
	// under. OpenCode reads AGENTS.md, Claude Code reads CLAUDE.md.
	ConfigName string

	// RestartHint is printed after a successful install.
	RestartHint string
}

// layouts holds the per-target mapping. Root is relative to the base
// directory and joined at resolve time.
var layouts = map[Target]Layout{
	OpenCode: {
		Target:       OpenCode,
		Root:         filepath.Join(".config", "opencode"),
		AgentsSource: "agents",
		SkillsSource: "skills",
		ConfigName:   "AGENTS.md",
		RestartHint:  "Restart OpenCode to pick up the new configuration.",
	},
	Claude: {
		Target:       Claude,
		Root:         ".claude",
		AgentsSource: "claude-agents",
		SkillsSource: "claude-skills",
		ConfigName:   "CLAUDE.md",
		RestartHint:  "Restart Claude Code to pick up the new configuration.",
	},
}

// ValidTokens returns the accepted target tokens in display order.
func ValidTokens() []string {
	return []string{string(OpenCode), string(Claude), string(Both)}
}

// Parse converts a command-line token into a Target. The empty string
// selects the default. Matching is case-sensitive.
func Parse(token string) (Target, error) {
	switch token {
	case "":
		return Default, nil
	case string(OpenCode), string(Claude), string(Both):
		return Target(token), nil
	}
	return "", errors.UnknownTarget(token, ValidTokens())
}

// Expand returns the concrete targets a target stands for. Both expands
// to OpenCode then Claude; a concrete target expands to itself.
func (t Target) Expand() []Target {
	if t == Both {
		return []Target{OpenCode, Claude}
	}
	return []Target{t}
}

// Resolve returns the layout for a concrete target. baseDir is the
// directory the destination root is anchored under; the empty string
// means the invoking user's home directory. Both has no layout of its
// own and must be expanded first.
func Resolve(t Target, baseDir string) (*Layout, error) {
	l, ok := layouts[t]
	if !ok {
		return nil, fmt.Errorf("target %q has no destination layout", t)
	}

	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		baseDir = home
	}

	l.Root = filepath.Join(baseDir, l.Root)
	return &l, nil
}
