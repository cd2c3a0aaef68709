// Package install implements the dotagent install pipeline: it copies
// the root config document, agent files, skill files, and hook examples
// from the source tree into a target's destination layout.
//
// The pipeline is strictly sequential and fails fast. Nothing is rolled
// back on error; partial state is left for the user to resolve by
// re-running.
package install

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dotstack/dotagent/internal/errors"
	"github.com/dotstack/dotagent/internal/logging"
	"github.com/dotstack/dotagent/internal/target"
	"github.com/dotstack/dotagent/internal/ui"
)

// File and directory name constants for the source and destination trees.
const (
	// ConfigSource is the root config document in the source tree. It is
	// installed under the target's own config filename (AGENTS.md or
	// CLAUDE.md).
	ConfigSource = "AGENTS.md"

	// SkillFilename is the canonical file each skill directory must
	// contain. Skill directories without it are skipped.
	SkillFilename = "SKILL.md"

	// AgentsDirName and SkillsDirName are the destination directory
	// names, identical across targets.
	AgentsDirName = "agents"
	SkillsDirName = "skills"

	// HooksDirName holds the hook example scripts, copied as an opaque
	// tree regardless of target.
	HooksDirName = "hooks"
	HookExamples = "examples"
)

// backupTimestamp is the layout of the backup suffix timestamp,
// YYYYMMDDHHMMSS. Second granularity; collisions are not guarded.
const backupTimestamp = "20060102150405"

// Installer copies a source-of-truth definition set into a target layout.
type Installer struct {
	// SourceRoot is the root of the source tree.
	SourceRoot string

	// BaseDir anchors the destination roots. Empty means the invoking
	// user's home directory; tests inject a temp dir here.
	BaseDir string

	// Out receives per-file progress lines and the final tally.
	// Defaults to os.Stdout.
	Out io.Writer

	Logger *slog.Logger
}

// Result summarizes one concrete-target install.
type Result struct {
	Target target.Target

	// Agents and Skills are post-hoc destination counts, not the number
	// of copies attempted.
	Agents int
	Skills int

	// HookFiles is the number of hook example files copied this run.
	HookFiles int

	// ConfigBackup is the path the previous config document was renamed
	// to, or empty if none existed.
	ConfigBackup string
}

func (ins *Installer) out() io.Writer {
	if ins.Out != nil {
		return ins.Out
	}
	return os.Stdout
}

func (ins *Installer) logger() *slog.Logger {
	if ins.Logger != nil {
		return ins.Logger
	}
	return logging.NewDefault()
}

// Run installs the source tree for one concrete target. Both must be
// expanded by the caller before calling Run.
func (ins *Installer) Run(t target.Target) (*Result, error) {
	layout, err := target.Resolve(t, ins.BaseDir)
	if err != nil {
		return nil, err
	}

	out := ins.out()
	log := logging.WithTarget(ins.logger(), string(t))
	log.Debug("installing", "source", ins.SourceRoot, "dest", layout.Root)

	// Validate mandatory sources before touching the destination, so a
	// broken source tree aborts without writing anything.
	srcConfig := filepath.Join(ins.SourceRoot, ConfigSource)
	if _, err := os.Stat(srcConfig); err != nil {
		return nil, errors.SourceConfigMissing(srcConfig, err)
	}

	agentsSrc := filepath.Join(ins.SourceRoot, layout.AgentsSource)
	agentEntries, err := os.ReadDir(agentsSrc)
	if err != nil {
		return nil, errors.SourceDirMissing(agentsSrc, err)
	}

	skillsSrc := filepath.Join(ins.SourceRoot, layout.SkillsSource)
	skillEntries, err := os.ReadDir(skillsSrc)
	if err != nil {
		return nil, errors.SourceDirMissing(skillsSrc, err)
	}

	result := &Result{Target: t}

	if err := os.MkdirAll(layout.Root, 0755); err != nil {
		return nil, errors.MkdirFailed(layout.Root, err)
	}

	// Root config document, with backup guard. Agents and skills are
	// overwritten without backup: the config file carries cross-session
	// customization risk, the rest is expected to be fully replaced.
	destConfig := filepath.Join(layout.Root, layout.ConfigName)
	bak, err := backupIfExists(destConfig)
	if err != nil {
		return nil, err
	}
	result.ConfigBackup = bak
	if bak != "" {
		log.Info("backed up existing config", "path", bak)
	}

	if err := copyFile(srcConfig, destConfig); err != nil {
		return nil, errors.CopyFailed(destConfig, err)
	}
	fmt.Fprintf(out, "  %s\n", ui.Muted(layout.ConfigName))

	// Agent files, flat, copied by filename.
	destAgents := filepath.Join(layout.Root, AgentsDirName)
	if err := os.MkdirAll(destAgents, 0755); err != nil {
		return nil, errors.MkdirFailed(destAgents, err)
	}
	for _, entry := range agentEntries {
		if entry.IsDir() {
			continue
		}
		dest := filepath.Join(destAgents, entry.Name())
		if err := copyFile(filepath.Join(agentsSrc, entry.Name()), dest); err != nil {
			return nil, errors.CopyFailed(dest, err)
		}
		fmt.Fprintf(out, "  %s\n", ui.Muted(AgentsDirName+"/"+entry.Name()))
	}

	// Skill directories. Only directories holding the canonical file are
	// installed; the rest are skipped without creating anything.
	for _, entry := range skillEntries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		srcSkill := filepath.Join(skillsSrc, name, SkillFilename)
		if _, err := os.Stat(srcSkill); err != nil {
			log.Debug("skipping skill without canonical file", "skill", name)
			continue
		}

		destDir := filepath.Join(layout.Root, SkillsDirName, name)
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return nil, errors.MkdirFailed(destDir, err)
		}
		dest := filepath.Join(destDir, SkillFilename)
		if err := copyFile(srcSkill, dest); err != nil {
			return nil, errors.CopyFailed(dest, err)
		}
		fmt.Fprintf(out, "  %s\n", ui.Muted(SkillsDirName+"/"+name+"/"+SkillFilename))
	}

	// Hook examples, copied as an opaque tree for every target. Absent
	// source is fine.
	hooksSrc := filepath.Join(ins.SourceRoot, HooksDirName, HookExamples)
	if info, err := os.Stat(hooksSrc); err == nil && info.IsDir() {
		hooksDest := filepath.Join(layout.Root, HooksDirName, HookExamples)
		n, err := copyTree(hooksSrc, hooksDest)
		if err != nil {
			return nil, errors.CopyFailed(hooksDest, err)
		}
		result.HookFiles = n
		fmt.Fprintf(out, "  %s\n", ui.Muted(fmt.Sprintf("%s/%s/ (%d files)", HooksDirName, HookExamples, n)))
	}

	// Report what is actually on disk, not what was attempted.
	tally, err := ScanDest(layout.Root)
	if err != nil {
		return nil, err
	}
	result.Agents = tally.Agents
	result.Skills = tally.Skills

	fmt.Fprintf(out, "\n%s\n", ui.Bold(fmt.Sprintf("Installed: %d agents, %d skills", tally.Agents, tally.Skills)))
	fmt.Fprintln(out, ui.Success(layout.RestartHint))

	return result, nil
}

// backupIfExists renames path to a timestamped sibling if it exists.
// Returns the backup path, or empty if there was nothing to back up.
func backupIfExists(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.BackupFailed(path, err)
	}

	bak := path + ".bak." + time.Now().Format(backupTimestamp)
	if err := os.Rename(path, bak); err != nil {
		return "", errors.BackupFailed(path, err)
	}
	return bak, nil
}
