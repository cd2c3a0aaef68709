package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SourceTree builds a complete dual-format source tree in a temp
// directory and returns its root. The tree covers both target formats:
// a root AGENTS.md, flat agent files, skill directories with SKILL.md,
// one skill directory deliberately missing its canonical file, and a
// hooks/examples tree.
func SourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteFile(t, filepath.Join(root, "AGENTS.md"), "# Global instructions\n")

	// OpenCode format.
	WriteFile(t, filepath.Join(root, "agents", "reviewer.md"), "# Reviewer\n")
	WriteFile(t, filepath.Join(root, "agents", "planner.md"), "# Planner\n")
	WriteFile(t, filepath.Join(root, "skills", "git-workflow", "SKILL.md"), "# Git workflow\n")
	WriteFile(t, filepath.Join(root, "skills", "refactoring", "SKILL.md"), "# Refactoring\n")
	WriteFile(t, filepath.Join(root, "skills", "incomplete", "notes.txt"), "draft\n")

	// Claude format.
	WriteFile(t, filepath.Join(root, "claude-agents", "reviewer.md"), "# Reviewer (claude)\n")
	WriteFile(t, filepath.Join(root, "claude-skills", "git-workflow", "SKILL.md"), "# Git workflow (claude)\n")

	// Hook examples, shared by both targets.
	WriteFile(t, filepath.Join(root, "hooks", "examples", "pre-commit.sh"), "#!/bin/sh\n")
	WriteFile(t, filepath.Join(root, "hooks", "examples", "lint", "check.sh"), "#!/bin/sh\n")

	return root
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ListFiles returns the relative paths of all regular files under root,
// sorted by os.ReadDir's lexical walk order.
func ListFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}
