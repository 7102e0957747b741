//go:build !windows

package drives

import (
	"golang.org/x/sys/unix"
)

// FallbackRoot is probed when enumeration fails.
const FallbackRoot = "/"

// listRoots exposes the single root volume; there are no drive letters here.
func listRoots() ([]string, error) {
	return []string{FallbackRoot}, nil
}

func totalBytes(root string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(root, &st); err != nil {
		return 0, err
	}
	return st.Blocks * uint64(st.Bsize), nil
}
