package install

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/logsink"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface without chmod-based permission tricks.
type faultSystem struct {
	base        System
	statErrs    map[string]error
	readErrs    map[string]error
	readDirErrs map[string]error
	mkdirErrs   map[string]error
	removeErrs  map[string]error
	chmodErrs   map[string]error
	appendErrs  map[string]error
	// copyErrs is consumed one error per CopyFile call to the destination;
	// a nil entry lets that attempt through.
	copyErrs map[string][]error

	mu         sync.Mutex
	copyCalls  map[string]int
	removeCall []string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:        base,
		statErrs:    map[string]error{},
		readErrs:    map[string]error{},
		readDirErrs: map[string]error{},
		mkdirErrs:   map[string]error{},
		removeErrs:  map[string]error{},
		chmodErrs:   map[string]error{},
		appendErrs:  map[string]error{},
		copyErrs:    map[string][]error{},
		copyCalls:   map[string]int{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) ReadDir(name string) ([]os.DirEntry, error) {
	if err, ok := f.readDirErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadDir(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) RemoveAll(path string) error {
	f.mu.Lock()
	f.removeCall = append(f.removeCall, normalizePath(path))
	f.mu.Unlock()
	if err, ok := f.removeErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.RemoveAll(path)
}

func (f *faultSystem) Chmod(name string, mode os.FileMode) error {
	if err, ok := f.chmodErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.Chmod(name, mode)
}

func (f *faultSystem) CopyFile(src string, dst string, overwrite bool) error {
	key := normalizePath(dst)
	f.mu.Lock()
	f.copyCalls[key]++
	var err error
	if errs := f.copyErrs[key]; len(errs) > 0 {
		err = errs[0]
		f.copyErrs[key] = errs[1:]
	}
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.base.CopyFile(src, dst, overwrite)
}

func (f *faultSystem) AppendFile(name string, data []byte, perm os.FileMode) error {
	if err, ok := f.appendErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.AppendFile(name, data, perm)
}

func (f *faultSystem) CreateExclusive(name string, perm os.FileMode) (io.WriteCloser, error) {
	return f.base.CreateExclusive(name, perm)
}

func (f *faultSystem) OpenZip(name string) (*zip.ReadCloser, error) {
	return f.base.OpenZip(name)
}

func (f *faultSystem) copies(dst string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyCalls[normalizePath(dst)]
}

// recordingConfirmer answers every prompt with answer and records the messages.
type recordingConfirmer struct {
	mu       sync.Mutex
	answer   bool
	messages []string
}

func (c *recordingConfirmer) Confirm(message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
	return c.answer
}

func (c *recordingConfirmer) calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// fastRetry keeps retry tests quick.
var fastRetry = RetryPolicy{Attempts: DefaultCopyAttempts, Interval: time.Millisecond}

// tfRoot creates an install root with custom/ and cfg/ and returns it.
func tfRoot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Team Fortress 2", "tf")
	for _, dir := range []string{"custom", "cfg"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return root
}

func defaultConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func newMemoryLog() *logsink.Memory {
	return &logsink.Memory{}
}
