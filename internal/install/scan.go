package install

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dotstack/dotagent/internal/errors"
)

// Tally counts what is present at a destination root.
type Tally struct {
	Agents    int `yaml:"agents"`
	Skills    int `yaml:"skills"`
	HookFiles int `yaml:"hook_files"`
}

// ScanDest counts the agents, skills, and hook example files actually
// present under root. Missing directories count as zero; the scan never
// creates anything.
func ScanDest(root string) (Tally, error) {
	var t Tally

	agentEntries, err := os.ReadDir(filepath.Join(root, AgentsDirName))
	if err != nil && !os.IsNotExist(err) {
		return t, errors.ScanFailed(root, err)
	}
	for _, entry := range agentEntries {
		if !entry.IsDir() {
			t.Agents++
		}
	}

	skillEntries, err := os.ReadDir(filepath.Join(root, SkillsDirName))
	if err != nil && !os.IsNotExist(err) {
		return t, errors.ScanFailed(root, err)
	}
	for _, entry := range skillEntries {
		if !entry.IsDir() {
			continue
		}
		canonical := filepath.Join(root, SkillsDirName, entry.Name(), SkillFilename)
		if _, err := os.Stat(canonical); err == nil {
			t.Skills++
		}
	}

	hooksRoot := filepath.Join(root, HooksDirName, HookExamples)
	walkErr := filepath.WalkDir(hooksRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			t.HookFiles++
		}
		return nil
	})
	if walkErr != nil && !os.IsNotExist(walkErr) {
		return t, errors.ScanFailed(hooksRoot, walkErr)
	}

	return t, nil
}

// Inventory lists what a source tree offers for one target format.
type Inventory struct {
	Agents []string `yaml:"agents"`
	Skills []string `yaml:"skills"`
}

// ScanSource lists the agent files and installable skills in the source
// subdirectories of one target format. Missing directories yield an
// empty inventory rather than an error.
func ScanSource(sourceRoot, agentsSubdir, skillsSubdir string) (Inventory, error) {
	var inv Inventory

	agentEntries, err := os.ReadDir(filepath.Join(sourceRoot, agentsSubdir))
	if err != nil && !os.IsNotExist(err) {
		return inv, errors.ScanFailed(sourceRoot, err)
	}
	for _, entry := range agentEntries {
		if !entry.IsDir() {
			inv.Agents = append(inv.Agents, entry.Name())
		}
	}

	skillEntries, err := os.ReadDir(filepath.Join(sourceRoot, skillsSubdir))
	if err != nil && !os.IsNotExist(err) {
		return inv, errors.ScanFailed(sourceRoot, err)
	}
	for _, entry := range skillEntries {
		if !entry.IsDir() {
			continue
		}
		canonical := filepath.Join(sourceRoot, skillsSubdir, entry.Name(), SkillFilename)
		if _, err := os.Stat(canonical); err == nil {
			inv.Skills = append(inv.Skills, entry.Name())
		}
	}

	return inv, nil
}
