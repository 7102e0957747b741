// Package locate finds the Team Fortress 2 data directory by probing
// well-known install locations on each drive.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/neodefaults/neodefaults-installer/internal/config"
	"github.com/neodefaults/neodefaults-installer/internal/drives"
	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// ErrDiscovery marks drive enumeration failures. Discovery degrades to the
// fallback drive rather than returning it.
var ErrDiscovery = errors.New("drive discovery failed")

// StatFunc reports file info for a path; os.Stat in production.
type StatFunc func(name string) (os.FileInfo, error)

// Resolver searches drives once and caches the answer.
type Resolver struct {
	enum       drives.Enumerator
	stat       StatFunc
	candidates []string
	minBytes   uint64
	dataDir    string
	fallback   string
	log        logsink.Sink

	once  sync.Once
	root  string
	found bool
}

// Options configures a Resolver. Zero Enumerator, Stat, and Log use the
// operating system and discard logging.
type Options struct {
	Discovery  config.Discovery
	Enumerator drives.Enumerator
	Stat       StatFunc
	Log        logsink.Sink
}

// New returns a Resolver for the given discovery settings.
func New(opts Options) *Resolver {
	r := &Resolver{
		enum:       opts.Enumerator,
		stat:       opts.Stat,
		candidates: opts.Discovery.Candidates,
		minBytes:   opts.Discovery.MinDriveBytes(),
		dataDir:    opts.Discovery.DataDir,
		fallback:   opts.Discovery.FallbackDrive,
		log:        opts.Log,
	}
	if r.enum == nil {
		r.enum = drives.System{}
	}
	if r.stat == nil {
		r.stat = os.Stat
	}
	if r.log == nil {
		r.log = logsink.Discard
	}
	if r.fallback == "" {
		r.fallback = drives.FallbackRoot
	}
	return r
}

// Resolve returns the data directory of the first install found. The search
// runs on the first call only; later calls return the cached answer.
func (r *Resolver) Resolve() (string, bool) {
	r.once.Do(func() {
		r.root, r.found = r.resolve()
	})
	return r.root, r.found
}

func (r *Resolver) resolve() (string, bool) {
	r.log.Write(messages.LocateStart)
	list, err := r.enum.Drives()
	if err != nil {
		r.log.Write(fmt.Sprintf(messages.LocateEnumerateFailedFmt, fmt.Errorf("%w: %w", ErrDiscovery, err), r.fallback))
		list = []drives.Drive{r.enum.Describe(r.fallback)}
	}

	hit, ok := r.findFirst(list)
	if !ok {
		r.log.Write(messages.LocateNotFound)
		return "", false
	}
	dir, err := filepath.Abs(filepath.Dir(hit))
	if err != nil {
		r.log.Write(fmt.Sprintf(messages.LocateAbsFailedFmt, hit, err))
		return "", false
	}
	root := filepath.Join(dir, r.dataDir)
	r.log.Write(fmt.Sprintf(messages.LocateFoundFmt, hit, root))
	return root, true
}

// findFirst returns the first candidate that exists, scanning drives in order
// and candidates in order within each drive.
func (r *Resolver) findFirst(list []drives.Drive) (string, bool) {
	for _, drive := range list {
		if drive.TotalBytes <= r.minBytes {
			r.log.Write(fmt.Sprintf(messages.LocateDriveSkippedFmt, drive.Root, drive.TotalBytes, r.minBytes))
			continue
		}
		r.log.Write(fmt.Sprintf(messages.LocateDriveProbeFmt, drive.Root))
		for _, candidate := range r.candidates {
			path := filepath.Join(drive.Root, filepath.FromSlash(candidate))
			if info, err := r.stat(path); err == nil && info.Mode().IsRegular() {
				return path, true
			}
		}
	}
	return "", false
}
