package install

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neodefaults/neodefaults-installer/internal/testutil"
)

func fontFixture(t *testing.T) (src string, sys string) {
	t.Helper()
	src = filepath.Join(t.TempDir(), "idhud-master", "resource", "fonts")
	testutil.WriteFile(t, filepath.Join(src, "a.ttf"), "font-a")
	testutil.WriteFile(t, filepath.Join(src, "b.otf"), "font-b")
	testutil.WriteFile(t, filepath.Join(src, "nested", "c.ttf"), "ignored")
	sys = filepath.Join(t.TempDir(), "Fonts")
	testutil.WriteFile(t, filepath.Join(sys, "existing.ttf"), "system")
	return src, sys
}

func newTestFontInstaller(sys System, src string, dst string) (*FontInstaller, *[]string) {
	var registered []string
	f := NewFontInstaller(sys, newMemoryLog(), NewCopier(sys, newMemoryLog(), fastRetry), src, dst)
	f.register = func(path string) error {
		registered = append(registered, filepath.Base(path))
		return nil
	}
	return f, &registered
}

func TestInstallFonts_CopiesMissingFonts(t *testing.T) {
	src, dst := fontFixture(t)
	f, registered := newTestFontInstaller(RealSystem{}, src, dst)

	res := f.InstallFonts()

	require.Equal(t, Success, res.Outcome, "err: %v", res.Err)
	assert.Equal(t, "font-a", testutil.ReadFile(t, filepath.Join(dst, "a.ttf")))
	assert.Equal(t, "font-b", testutil.ReadFile(t, filepath.Join(dst, "b.otf")))
	assert.NoFileExists(t, filepath.Join(dst, "c.ttf"))
	assert.Equal(t, []string{"a.ttf", "b.otf"}, *registered)
}

func TestInstallFonts_SkipsPresentFonts(t *testing.T) {
	src, dst := fontFixture(t)
	testutil.WriteFile(t, filepath.Join(dst, "a.ttf"), "already here")
	sys := newFaultSystem(RealSystem{})
	f, registered := newTestFontInstaller(sys, src, dst)

	res := f.InstallFonts()

	require.Equal(t, Success, res.Outcome)
	assert.Equal(t, "already here", testutil.ReadFile(t, filepath.Join(dst, "a.ttf")))
	assert.Equal(t, 0, sys.copies(filepath.Join(dst, "a.ttf")))
	assert.Equal(t, []string{"b.otf"}, *registered)
}

func TestInstallFonts_CopyErrorHaltsRemaining(t *testing.T) {
	src, dst := fontFixture(t)
	sys := newFaultSystem(RealSystem{})
	broken := errors.New("in use")
	sys.copyErrs[filepath.Join(dst, "a.ttf")] = []error{broken, broken, broken}
	f, _ := newTestFontInstaller(sys, src, dst)

	res := f.InstallFonts()

	assert.Equal(t, Failure, res.Outcome)
	assert.ErrorIs(t, res.Err, broken)
	assert.NoFileExists(t, filepath.Join(dst, "b.otf"))
}

func TestInstallFonts_MissingBundleFails(t *testing.T) {
	_, dst := fontFixture(t)
	f, _ := newTestFontInstaller(RealSystem{}, filepath.Join(t.TempDir(), "nope"), dst)

	res := f.InstallFonts()

	assert.Equal(t, Failure, res.Outcome)
	assert.Equal(t, ComponentFonts, res.Component)
}

func TestInstallFonts_NoSystemDirFails(t *testing.T) {
	src, _ := fontFixture(t)
	f, _ := newTestFontInstaller(RealSystem{}, src, "")

	res := f.InstallFonts()

	assert.Equal(t, Failure, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrPrecondition)
}

func TestInstallFonts_RegistrationFailureIsLoggedOnly(t *testing.T) {
	src, dst := fontFixture(t)
	log := newMemoryLog()
	f := NewFontInstaller(RealSystem{}, log, NewCopier(RealSystem{}, log, fastRetry), src, dst)
	f.register = func(string) error { return errors.New("access denied") }

	res := f.InstallFonts()

	assert.Equal(t, Success, res.Outcome)
	assert.True(t, log.Contains("could not register"))
}
