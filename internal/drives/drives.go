// Package drives enumerates the filesystem volumes searched for a TF2 install.
package drives

// Drive is a named volume and its total capacity. TotalBytes is zero when the
// capacity could not be read (for example an empty optical drive).
type Drive struct {
	Root       string
	TotalBytes uint64
}

// Enumerator lists volumes and describes a single volume by root.
type Enumerator interface {
	Drives() ([]Drive, error)
	Describe(root string) Drive
}

// System enumerates the volumes visible to the operating system.
type System struct{}

// Drives lists every volume visible to the operating system.
func (System) Drives() ([]Drive, error) {
	roots, err := listRoots()
	if err != nil {
		return nil, err
	}
	drives := make([]Drive, 0, len(roots))
	for _, root := range roots {
		drives = append(drives, describe(root))
	}
	return drives, nil
}

// Describe returns root with its capacity.
func (System) Describe(root string) Drive {
	return describe(root)
}

func describe(root string) Drive {
	total, err := totalBytes(root)
	if err != nil {
		return Drive{Root: root}
	}
	return Drive{Root: root, TotalBytes: total}
}
