//go:build windows

package drives

import (
	"golang.org/x/sys/windows"
)

// FallbackRoot is probed when enumeration fails.
const FallbackRoot = `C:\`

// listRoots returns logical drive roots such as `C:\`.
func listRoots() ([]string, error) {
	n, err := windows.GetLogicalDriveStrings(0, nil)
	if err != nil {
		return nil, err
	}
	buf := make([]uint16, n)
	n, err = windows.GetLogicalDriveStrings(uint32(len(buf)), &buf[0])
	if err != nil {
		return nil, err
	}
	// The buffer holds NUL-terminated strings followed by a final NUL.
	var roots []string
	start := 0
	for i := 0; i < int(n); i++ {
		if buf[i] != 0 {
			continue
		}
		if i > start {
			roots = append(roots, windows.UTF16ToString(buf[start:i]))
		}
		start = i + 1
	}
	return roots, nil
}

func totalBytes(root string) (uint64, error) {
	path, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return 0, err
	}
	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(path, &freeToCaller, &total, &totalFree); err != nil {
		return 0, err
	}
	return total, nil
}
