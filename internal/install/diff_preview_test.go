package install

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/neodefaults/neodefaults-installer/internal/testutil"
)

func TestNormalizeDiffMaxLines_DefaultAndPositive(t *testing.T) {
	if got := normalizeDiffMaxLines(0); got != DefaultDiffMaxLines {
		t.Fatalf("normalizeDiffMaxLines(0) = %d, want %d", got, DefaultDiffMaxLines)
	}
	if got := normalizeDiffMaxLines(-1); got != DefaultDiffMaxLines {
		t.Fatalf("normalizeDiffMaxLines(-1) = %d, want %d", got, DefaultDiffMaxLines)
	}
	if got := normalizeDiffMaxLines(7); got != 7 {
		t.Fatalf("normalizeDiffMaxLines(7) = %d, want 7", got)
	}
}

func TestRenderTruncatedUnifiedDiff(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nx\ny\nz\n"
	diff, truncated := renderTruncatedUnifiedDiff("from.txt", "to.txt", from, to, 2)
	if !truncated {
		t.Fatal("expected truncated diff")
	}
	if !strings.Contains(diff, "truncated to 2 lines") {
		t.Fatalf("expected truncation note in diff:\n%s", diff)
	}
}

func TestRenderTruncatedUnifiedDiff_NoChanges(t *testing.T) {
	diff, truncated := renderTruncatedUnifiedDiff("a", "b", "same\n", "same\n", 10)
	if truncated {
		t.Fatal("did not expect truncation")
	}
	if diff != "" {
		t.Fatalf("expected empty diff, got %q", diff)
	}
}

func TestPreview_DoesNotWrite(t *testing.T) {
	root := tfRoot(t)
	script := filepath.Join(root, "cfg", "autoexec.cfg")
	testutil.WriteFile(t, script, "bind w +forward\n")
	p, installed := newTestPatcher(RealSystem{}, root)

	preview, err := p.Preview(installed, 0)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if preview.Target != script || !preview.Exists {
		t.Fatalf("unexpected target %q exists=%v", preview.Target, preview.Exists)
	}
	if !strings.Contains(preview.UnifiedDiff, "+exec NeoDefaults/neodefaults") {
		t.Fatalf("expected exec line in diff:\n%s", preview.UnifiedDiff)
	}
	if got := testutil.ReadFile(t, script); got != "bind w +forward\n" {
		t.Fatalf("preview modified the script: %q", got)
	}
}

func TestPreview_MissingScriptDiffsFromDevNull(t *testing.T) {
	root := tfRoot(t)
	p, installed := newTestPatcher(RealSystem{}, root)

	preview, err := p.Preview(installed, 0)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if preview.Exists {
		t.Fatal("expected missing script")
	}
	if strings.HasPrefix(preview.Block, "\n") {
		t.Fatalf("block for a new script should not start blank: %q", preview.Block)
	}
	if !strings.Contains(preview.UnifiedDiff, "/dev/null") {
		t.Fatalf("expected /dev/null header:\n%s", preview.UnifiedDiff)
	}
}
