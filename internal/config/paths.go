package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// Paths holds resolved install-side paths under a TF2 data directory.
type Paths struct {
	Root           string
	CustomDir      string
	CfgDir         string
	ConfigDir      string
	DestConfig     string
	CustomConfig   string
	Autoexec       string
	PluginAutoexec string
}

// InstallPaths returns the install-side paths for root (the "tf" directory).
func (c *Config) InstallPaths(root string) Paths {
	cfgDir := filepath.Join(root, "cfg")
	configDir := filepath.Join(cfgDir, c.Config.Folder)
	return Paths{
		Root:           root,
		CustomDir:      filepath.Join(root, "custom"),
		CfgDir:         cfgDir,
		ConfigDir:      configDir,
		DestConfig:     filepath.Join(configDir, c.Config.Dest),
		CustomConfig:   filepath.Join(configDir, c.Config.Custom),
		Autoexec:       filepath.Join(cfgDir, "autoexec.cfg"),
		PluginAutoexec: filepath.Join(cfgDir, "user", "autoexec.cfg"),
	}
}

// BundleDir returns the directory a bundle extracts to under root.
func (c *Config) BundleDir(root string, b Bundle) string {
	return filepath.Join(root, "custom", b.Dir)
}

// FontsDir returns the directory holding the fonts of the extracted font bundle.
func (c *Config) FontsDir(root string) string {
	b, _ := c.Bundle(c.Fonts.Bundle)
	return filepath.Join(c.BundleDir(root, b), filepath.FromSlash(c.Fonts.Dir))
}

// Assets resolves bundled input files relative to the installer's base directory.
type Assets struct {
	Base string
}

// Resource returns the path of a file in the resource directory.
func (a Assets) Resource(name string) string {
	return filepath.Join(a.Base, "resource", name)
}

// SourceConfig returns the bundled primary config.
func (a Assets) SourceConfig(c *Config) string {
	return a.Resource(c.Config.Source)
}

// CustomTemplate returns the bundled user-override template.
func (a Assets) CustomTemplate(c *Config) string {
	return a.Resource(c.Config.Custom)
}

// Archive returns the bundled archive for b.
func (a Assets) Archive(b Bundle) string {
	return a.Resource(b.Archive)
}

// BaseDir returns the installer's base directory: the executable's directory,
// or its parent in development runs.
func BaseDir(executable string, develop bool) (string, error) {
	base := filepath.Dir(executable)
	if develop {
		base = filepath.Join(base, "..")
	}
	return filepath.Abs(base)
}

// LogDir returns the directory for the install log.
func (c *Config) LogDir() (string, error) {
	if c.Log.Dir != "" {
		return expand(c.Log.Dir)
	}
	return defaultLogDir()
}

// SystemFontDir returns the directory fonts are copied into.
func (c *Config) SystemFontDir() (string, error) {
	if c.Fonts.SystemDir != "" {
		return expand(c.Fonts.SystemDir)
	}
	return defaultFontDir()
}

func expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return filepath.Clean(expanded), nil
}

func userCacheLogDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigUserCacheDirFmt, err)
	}
	return filepath.Join(dir, logFolderName), nil
}

const logFolderName = "NeoDefaults"
