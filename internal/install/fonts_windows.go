//go:build windows

package install

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const fontsRegistryPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

// registerFont records the font so it is available without a reboot.
func registerFont(path string) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, fontsRegistryPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer func() { _ = key.Close() }()
	return key.SetStringValue(fontValueName(path), path)
}

func fontValueName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	kind := "TrueType"
	if strings.EqualFold(ext, ".otf") {
		kind = "OpenType"
	}
	return strings.TrimSuffix(base, ext) + " (" + kind + ")"
}
