package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotstack/dotagent/internal/testutil"
)

// withTestEnv redirects HOME to a temp dir and points --source at a
// fixture tree, restoring both afterwards. Returns the fake home.
func withTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", home)
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })

	oldSource := sourceDir
	sourceDir = testutil.SourceTree(t)
	t.Cleanup(func() { sourceDir = oldSource })

	return home
}

func TestInstallDefaultTarget(t *testing.T) {
	home := withTestEnv(t)

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	err := runInstall(installCmd, nil)
	testutil.AssertNoError(t, err)

	// Default target is opencode.
	root := filepath.Join(home, ".config", "opencode")
	testutil.AssertFileExists(t, filepath.Join(root, "AGENTS.md"))
	testutil.AssertFileExists(t, filepath.Join(root, "agents", "reviewer.md"))
	testutil.AssertNotExists(t, filepath.Join(home, ".claude"))

	testutil.AssertContains(t, buf.String(), "Installing opencode configuration...")
	testutil.AssertContains(t, buf.String(), "Installed: 2 agents, 2 skills")
}

func TestInstallClaudeTarget(t *testing.T) {
	home := withTestEnv(t)

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	err := runInstall(installCmd, []string{"claude"})
	testutil.AssertNoError(t, err)

	testutil.AssertFileExists(t, filepath.Join(home, ".claude", "CLAUDE.md"))
	testutil.AssertNotExists(t, filepath.Join(home, ".config"))
}

func TestInstallBothTargets(t *testing.T) {
	home := withTestEnv(t)

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	err := runInstall(installCmd, []string{"both"})
	testutil.AssertNoError(t, err)

	testutil.AssertFileExists(t, filepath.Join(home, ".config", "opencode", "AGENTS.md"))
	testutil.AssertFileExists(t, filepath.Join(home, ".claude", "CLAUDE.md"))

	// opencode installs before claude.
	out := buf.String()
	if strings.Index(out, "opencode configuration") > strings.Index(out, "claude configuration") {
		t.Error("both should install opencode before claude")
	}
}

func TestInstallUnknownTarget(t *testing.T) {
	home := withTestEnv(t)

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	err := runInstall(installCmd, []string{"bogus"})
	testutil.AssertError(t, err)
	for _, token := range []string{"opencode", "claude", "both"} {
		testutil.AssertErrorContains(t, err, token)
	}

	// A usage error writes nothing anywhere.
	entries, readErr := os.ReadDir(home)
	testutil.AssertNoError(t, readErr)
	testutil.AssertEqual(t, 0, len(entries))
}

func TestInstallMissingSourceConfig(t *testing.T) {
	home := withTestEnv(t)
	testutil.AssertNoError(t, os.Remove(filepath.Join(sourceDir, "AGENTS.md")))

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	err := runInstall(installCmd, nil)
	testutil.AssertError(t, err)

	entries, readErr := os.ReadDir(home)
	testutil.AssertNoError(t, readErr)
	testutil.AssertEqual(t, 0, len(entries))
}

func TestInstallBothStopsAtFirstFailure(t *testing.T) {
	home := withTestEnv(t)
	// Break only the claude-format source tree.
	testutil.AssertNoError(t, os.RemoveAll(filepath.Join(sourceDir, "claude-agents")))

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	err := runInstall(installCmd, []string{"both"})
	testutil.AssertError(t, err)

	// The opencode half completed before the failure; partial state stays.
	testutil.AssertFileExists(t, filepath.Join(home, ".config", "opencode", "AGENTS.md"))
	testutil.AssertNotExists(t, filepath.Join(home, ".claude"))
}
