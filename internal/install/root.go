package install

import "sync/atomic"

// InstallRoot holds the TF2 data directory. It is assigned at most once and
// read without locking afterwards.
type InstallRoot struct {
	path atomic.Pointer[string]
}

// NewInstallRoot returns an unresolved root.
func NewInstallRoot() *InstallRoot {
	return &InstallRoot{}
}

// Set assigns the root. Only the first call succeeds.
func (r *InstallRoot) Set(path string) error {
	if !r.path.CompareAndSwap(nil, &path) {
		return ErrRootAlreadySet
	}
	return nil
}

// Get returns the root and whether it has been resolved.
func (r *InstallRoot) Get() (string, bool) {
	p := r.path.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}
