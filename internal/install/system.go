package install

import (
	"archive/zip"
	"io"
	"os"
)

// System abstracts the filesystem operations needed by the installer so tests
// can inject faults without chmod tricks.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.DirEntry, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	Chmod(name string, mode os.FileMode) error
	// CopyFile copies src to dst. With overwrite false it fails if dst exists.
	CopyFile(src string, dst string, overwrite bool) error
	// AppendFile appends data to name, creating it if needed.
	AppendFile(name string, data []byte, perm os.FileMode) error
	// CreateExclusive creates name for writing and fails if it already exists.
	CreateExclusive(name string, perm os.FileMode) (io.WriteCloser, error)
	OpenZip(name string) (*zip.ReadCloser, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Chmod changes the mode of the named file. On Windows only the write bit
// matters: clearing it sets the read-only attribute.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// CopyFile copies src to dst.
func (RealSystem) CopyFile(src string, dst string, overwrite bool) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	out, err := os.OpenFile(dst, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// AppendFile appends data to name, creating it if needed.
func (RealSystem) AppendFile(name string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// CreateExclusive creates name for writing and fails if it already exists.
func (RealSystem) CreateExclusive(name string, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// OpenZip opens the named zip archive.
func (RealSystem) OpenZip(name string) (*zip.ReadCloser, error) {
	return zip.OpenReader(name)
}
