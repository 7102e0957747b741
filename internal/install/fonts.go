package install

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// ComponentFonts names the font component in results.
const ComponentFonts = "fonts"

// FontInstaller copies the fonts of an extracted bundle into the system font
// directory.
type FontInstaller struct {
	sys       System
	log       logsink.Sink
	copier    *Copier
	sourceDir string
	systemDir string
	register  func(path string) error
}

// NewFontInstaller returns a FontInstaller copying from sourceDir to systemDir.
func NewFontInstaller(sys System, log logsink.Sink, copier *Copier, sourceDir string, systemDir string) *FontInstaller {
	return &FontInstaller{
		sys:       sys,
		log:       log,
		copier:    copier,
		sourceDir: sourceDir,
		systemDir: systemDir,
		register:  registerFont,
	}
}

// InstallFonts copies every font not already present. The first listing or
// copy error stops the install.
func (f *FontInstaller) InstallFonts() Result {
	if f.systemDir == "" {
		err := fmt.Errorf("%w: %s", ErrPrecondition, messages.InstallFontsPrepareFailed)
		f.log.WriteError(messages.InstallFontsPrepareFailed)
		return failure(ComponentFonts, err)
	}
	entries, err := f.sys.ReadDir(f.sourceDir)
	if err != nil {
		f.log.WriteError(messages.InstallFontsListFailed, err.Error())
		return failure(ComponentFonts, fmt.Errorf(messages.InstallListFontsFmt, f.sourceDir, err))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		dest := filepath.Join(f.systemDir, name)
		_, err := f.sys.Stat(dest)
		if err == nil {
			f.log.Write(fmt.Sprintf(messages.InstallFontSkipFmt, name))
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			f.log.WriteError(messages.InstallFontFailed, err.Error())
			return failure(ComponentFonts, fmt.Errorf(messages.InstallCopyFontFmt, name, err))
		}

		f.log.Write(fmt.Sprintf(messages.InstallFontStartFmt, name, f.systemDir))
		if err := f.copier.Copy(filepath.Join(f.sourceDir, name), dest, false); err != nil {
			f.log.WriteError(messages.InstallFontFailed, err.Error())
			return failure(ComponentFonts, fmt.Errorf(messages.InstallCopyFontFmt, name, err))
		}
		if err := f.register(dest); err != nil {
			f.log.Write(fmt.Sprintf(messages.InstallFontRegisterFailFmt, name, err))
		}
	}

	f.log.Write(messages.InstallFontsDone)
	return Result{Component: ComponentFonts, Outcome: Success}
}
