//go:build !windows

package config

import "path/filepath"

func defaultLogDir() (string, error) {
	return userCacheLogDir()
}

// defaultFontDir is the per-user fontconfig directory.
func defaultFontDir() (string, error) {
	return expand(filepath.Join("~", ".local", "share", "fonts"))
}
