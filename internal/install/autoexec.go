package install

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// AutoexecPatcher appends the exec directive for the installed config to the
// game's startup script.
type AutoexecPatcher struct {
	sys     System
	log     logsink.Sink
	paths   config.Paths
	folder  string
	pattern string
}

// NewAutoexecPatcher returns a patcher for the install under paths. folder is
// the config folder under cfg/; pattern matches plugin marker files in custom/.
func NewAutoexecPatcher(sys System, log logsink.Sink, paths config.Paths, folder string, pattern string) *AutoexecPatcher {
	return &AutoexecPatcher{sys: sys, log: log, paths: paths, folder: folder, pattern: pattern}
}

// autoexecPlan describes the append a patch would perform.
type autoexecPlan struct {
	Target   string
	Existing string
	Exists   bool
	Block    string
}

// Target returns the startup script to patch. When any file in custom/
// matches the plugin pattern the plugin-aware location wins, even if the
// default script exists.
func (p *AutoexecPatcher) Target() (string, error) {
	entries, err := p.sys.ReadDir(p.paths.CustomDir)
	if err != nil {
		return "", fmt.Errorf(messages.InstallListPluginsFmt, p.paths.CustomDir, err)
	}
	pattern := strings.ToLower(p.pattern)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := path.Match(pattern, strings.ToLower(entry.Name())); ok {
			p.log.Write(fmt.Sprintf(messages.InstallAutoexecPluginFmt, entry.Name()))
			return p.paths.PluginAutoexec, nil
		}
	}
	return p.paths.Autoexec, nil
}

// Directive returns the exec line for installedConfig.
func (p *AutoexecPatcher) Directive(installedConfig string) string {
	base := filepath.Base(installedConfig)
	return fmt.Sprintf(messages.AutoexecExecFmt, p.folder, strings.TrimSuffix(base, filepath.Ext(base)))
}

func (p *AutoexecPatcher) plan(installedConfig string) (autoexecPlan, error) {
	target, err := p.Target()
	if err != nil {
		return autoexecPlan{}, err
	}
	plan := autoexecPlan{Target: target}
	data, err := p.sys.ReadFile(target)
	switch {
	case err == nil:
		plan.Exists = true
		plan.Existing = string(data)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return autoexecPlan{}, fmt.Errorf(messages.InstallReadAutoexecFmt, target, err)
	}

	directive := p.Directive(installedConfig)
	var b strings.Builder
	if plan.Exists {
		// Keep the block off any unterminated last line.
		b.WriteString("\n")
	}
	b.WriteString(messages.AutoexecHeader + "\n")
	b.WriteString(directive + "\n")
	b.WriteString(messages.AutoexecFooter + "\n")
	plan.Block = b.String()

	if plan.Exists && containsLine(plan.Existing, directive) {
		p.log.Write(fmt.Sprintf(messages.InstallAutoexecDuplicateFmt, target, directive))
	}
	return plan, nil
}

// Patch appends the marked exec block for installedConfig, creating the
// script if needed. Prior content is never modified.
func (p *AutoexecPatcher) Patch(installedConfig string) error {
	plan, err := p.plan(installedConfig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	p.log.Write(fmt.Sprintf(messages.InstallAutoexecTargetFmt, plan.Target))
	if err := p.sys.MkdirAll(filepath.Dir(plan.Target), 0o755); err != nil {
		return fmt.Errorf("%w: "+messages.InstallCreateDirFmt, ErrPatch, filepath.Dir(plan.Target), err)
	}
	if err := p.sys.AppendFile(plan.Target, []byte(plan.Block), 0o644); err != nil {
		return fmt.Errorf("%w: "+messages.InstallAppendAutoexecFmt, ErrPatch, plan.Target, err)
	}
	return nil
}

func containsLine(content string, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}
