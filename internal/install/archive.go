package install

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

var errNotDir = errors.New("not a directory")

// ArchiveInstaller extracts component bundles, asking before it replaces an
// existing install.
type ArchiveInstaller struct {
	sys     System
	log     logsink.Sink
	confirm Confirmer
}

// NewArchiveInstaller returns an ArchiveInstaller.
func NewArchiveInstaller(sys System, log logsink.Sink, confirm Confirmer) *ArchiveInstaller {
	return &ArchiveInstaller{sys: sys, log: log, confirm: confirm}
}

// Install extracts source so that it produces destination. The archive's root
// entry is expected to be named after destination's leaf, so extraction
// targets destination's parent. Errors are logged and returned as Failure.
func (a *ArchiveInstaller) Install(source string, destination string, name string) Result {
	outcome, err := a.install(source, destination, name)
	if err != nil {
		a.log.WriteError(fmt.Sprintf(messages.InstallBundleFailedFmt, name), err.Error())
		return failure(name, err)
	}
	return Result{Component: name, Outcome: outcome}
}

func (a *ArchiveInstaller) install(source string, destination string, name string) (Outcome, error) {
	destination = filepath.Clean(destination)
	parent := filepath.Dir(destination)

	if _, err := a.sys.Stat(source); err != nil {
		return Failure, fmt.Errorf("%w: "+messages.InstallSourceMissingFmt, ErrPrecondition, source, err)
	}
	info, err := a.sys.Stat(parent)
	if err == nil && !info.IsDir() {
		err = errNotDir
	}
	if err != nil {
		return Failure, fmt.Errorf("%w: "+messages.InstallDestinationParentFmt, ErrPrecondition, destination, err)
	}

	_, err = a.sys.Stat(destination)
	switch {
	case err == nil:
		if !a.confirm.Confirm(fmt.Sprintf(messages.InstallBundleExistsPromptFmt, name, destination)) {
			a.log.Write(fmt.Sprintf(messages.InstallBundleOptedOutFmt, name))
			return OptedOut, nil
		}
		a.log.Write(fmt.Sprintf(messages.InstallBundleDeletingFmt, destination))
		if err := a.sys.RemoveAll(destination); err != nil {
			return Failure, fmt.Errorf(messages.InstallRemoveExistingFmt, destination, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Failure, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}

	a.log.Write(fmt.Sprintf(messages.InstallBundleStartFmt, name, source, destination))
	if err := a.extract(source, parent); err != nil {
		return Failure, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	if _, err := a.sys.Stat(destination); err != nil {
		a.log.Write(fmt.Sprintf(messages.InstallBundleMissingLeafFmt, source, destination))
	}
	a.log.Write(fmt.Sprintf(messages.InstallBundleDoneFmt, name))
	return Success, nil
}

// extract unpacks every entry of the archive under dir without overwriting.
func (a *ArchiveInstaller) extract(source string, dir string) error {
	r, err := a.sys.OpenZip(source)
	if err != nil {
		return fmt.Errorf(messages.InstallOpenArchiveFmt, source, err)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		target, err := entryPath(dir, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := a.sys.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf(messages.InstallCreateDirFmt, target, err)
			}
			continue
		}
		if err := a.sys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf(messages.InstallCreateDirFmt, filepath.Dir(target), err)
		}
		if err := a.extractFile(f, target); err != nil {
			return fmt.Errorf(messages.InstallExtractEntryFmt, f.Name, err)
		}
	}
	return nil
}

func (a *ArchiveInstaller) extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := a.sys.CreateExclusive(target, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// entryPath maps an archive entry name under dir, rejecting names that would
// escape it.
func entryPath(dir string, name string) (string, error) {
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf(messages.InstallArchiveEntryEscapesFmt, name, dir)
	}
	return filepath.Join(dir, rel), nil
}
