package install

import (
	"path/filepath"
	"testing"

	"github.com/dotstack/dotagent/internal/testutil"
)

func TestScanDestEmptyRoot(t *testing.T) {
	tally, err := ScanDest(t.TempDir())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Tally{}, tally)
}

func TestScanDestMissingRoot(t *testing.T) {
	tally, err := ScanDest(filepath.Join(t.TempDir(), "nope"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Tally{}, tally)
}

func TestScanDestCountsOnlyCanonicalSkills(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, "agents", "a.md"), "a")
	testutil.WriteFile(t, filepath.Join(root, "agents", "b.md"), "b")
	testutil.WriteFile(t, filepath.Join(root, "skills", "one", "SKILL.md"), "s")
	testutil.WriteFile(t, filepath.Join(root, "skills", "stub", "README.md"), "r")
	testutil.WriteFile(t, filepath.Join(root, "hooks", "examples", "h.sh"), "#!/bin/sh\n")

	tally, err := ScanDest(root)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Tally{Agents: 2, Skills: 1, HookFiles: 1}, tally)
}

func TestScanSource(t *testing.T) {
	src := testutil.SourceTree(t)

	inv, err := ScanSource(src, "agents", "skills")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, []string{"planner.md", "reviewer.md"}, inv.Agents)
	testutil.AssertEqual(t, []string{"git-workflow", "refactoring"}, inv.Skills)
}

func TestScanSourceMissingDirs(t *testing.T) {
	inv, err := ScanSource(t.TempDir(), "agents", "skills")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, 0, len(inv.Agents))
	testutil.AssertEqual(t, 0, len(inv.Skills))
}
