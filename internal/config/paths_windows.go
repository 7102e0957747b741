//go:build windows

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// defaultLogDir mirrors the CommonApplicationData location used by earlier releases.
func defaultLogDir() (string, error) {
	if programData := os.Getenv("ProgramData"); programData != "" {
		return filepath.Join(programData, logFolderName), nil
	}
	return userCacheLogDir()
}

func defaultFontDir() (string, error) {
	windir := os.Getenv("windir")
	if windir == "" {
		windir = os.Getenv("SystemRoot")
	}
	if windir == "" {
		return "", fmt.Errorf(messages.ConfigFontDirUnknownFmt, "windir")
	}
	return filepath.Join(windir, "Fonts"), nil
}
