package install

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown.
const DefaultDiffMaxLines = 40

// Preview is a dry-run view of an autoexec patch.
type Preview struct {
	Target      string
	Exists      bool
	Block       string
	UnifiedDiff string
	Truncated   bool
}

// Preview reports what Patch would append for installedConfig without
// touching the filesystem.
func (p *AutoexecPatcher) Preview(installedConfig string, maxLines int) (Preview, error) {
	plan, err := p.plan(installedConfig)
	if err != nil {
		return Preview{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	fromName := plan.Target + " (current)"
	if !plan.Exists {
		fromName = "/dev/null"
	}
	rendered, truncated := renderTruncatedUnifiedDiff(fromName, plan.Target+" (patched)", plan.Existing, plan.Existing+plan.Block, maxLines)
	return Preview{
		Target:      plan.Target,
		Exists:      plan.Exists,
		Block:       plan.Block,
		UnifiedDiff: rendered,
		Truncated:   truncated,
	}, nil
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.PreviewTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
