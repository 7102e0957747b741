package config

// FileName is the optional installer config looked up in the assets directory.
const FileName = "neodefaults.toml"

// Config is the installer configuration. Every field has a built-in default;
// a TOML file only needs the keys it changes.
type Config struct {
	Discovery Discovery `toml:"discovery"`
	Config    CfgFiles  `toml:"config"`
	Bundles   []Bundle  `toml:"bundles"`
	Fonts     Fonts     `toml:"fonts"`
	Autoexec  Autoexec  `toml:"autoexec"`
	Log       Log       `toml:"log"`
}

// Discovery controls how drives are searched for a TF2 install.
type Discovery struct {
	// MinDriveSizeGB skips drives whose total capacity is at or below this size.
	// TF2 takes around 21 GB, so the default stays well below that.
	MinDriveSizeGB int64 `toml:"min_drive_size_gb"`
	// FallbackDrive is probed when drive enumeration fails. Empty means the
	// platform default.
	FallbackDrive string `toml:"fallback_drive"`
	// Candidates are slash-separated paths to hl2.exe relative to a drive root, in probe order.
	Candidates []string `toml:"candidates"`
	// DataDir is the game data directory next to hl2.exe.
	DataDir string `toml:"data_dir"`
}

// CfgFiles names the config files installed under cfg/<Folder>.
type CfgFiles struct {
	Folder string `toml:"folder"`
	Source string `toml:"source"`
	Dest   string `toml:"dest"`
	Custom string `toml:"custom"`
}

// Bundle is an archive-packaged component extracted under custom/.
type Bundle struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Archive string `toml:"archive"`
	Dir     string `toml:"dir"`
}

// DisplayName returns Name, falling back to ID.
func (b Bundle) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID
}

// Fonts locates the fonts shipped inside a bundle.
type Fonts struct {
	Bundle    string `toml:"bundle"`
	Dir       string `toml:"dir"`
	SystemDir string `toml:"system_dir"`
}

// Autoexec controls startup-script patching.
type Autoexec struct {
	// PluginPattern matches files in custom/ that mark a mastercomfig install.
	PluginPattern string `toml:"plugin_pattern"`
}

// Log controls where the install log is written.
type Log struct {
	Dir string `toml:"dir"`
}

// Bundle IDs shipped with the installer.
const (
	BundleHUD      = "hud"
	BundleHitsound = "hitsound"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Discovery: Discovery{
			MinDriveSizeGB: 16,
			Candidates: []string{
				"Program Files (x86)/Steam/SteamApps/common/Team Fortress 2/hl2.exe",
				"Steam/SteamApps/common/Team Fortress 2/hl2.exe",
				"SteamLibrary/SteamApps/common/Team Fortress 2/hl2.exe",
			},
			DataDir: "tf",
		},
		Config: CfgFiles{
			Folder: "NeoDefaults",
			Source: "NeoDefaults-v1.0.0-SNAPSHOT.cfg",
			Dest:   "neodefaults.cfg",
			Custom: "custom.cfg",
		},
		Bundles: []Bundle{
			{ID: BundleHUD, Name: "HUD", Archive: "idhud-master.zip", Dir: "idhud-master"},
			{ID: BundleHitsound, Name: "hitsound", Archive: "NeoDefaults-hitsound.zip", Dir: "NeoDefaults-hitsound"},
		},
		Fonts: Fonts{
			Bundle: BundleHUD,
			Dir:    "resource/fonts",
		},
		Autoexec: Autoexec{
			PluginPattern: "mastercomfig*preset.vpk",
		},
	}
}

// MinDriveBytes returns the drive size threshold in bytes.
func (d Discovery) MinDriveBytes() uint64 {
	if d.MinDriveSizeGB <= 0 {
		return 0
	}
	return uint64(d.MinDriveSizeGB) << 30
}

// Bundle returns the bundle with the given id.
func (c *Config) Bundle(id string) (Bundle, bool) {
	for _, b := range c.Bundles {
		if b.ID == id {
			return b, true
		}
	}
	return Bundle{}, false
}

// applyDefaults fills every unset field from Default.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Discovery.MinDriveSizeGB == 0 {
		c.Discovery.MinDriveSizeGB = def.Discovery.MinDriveSizeGB
	}
	if len(c.Discovery.Candidates) == 0 {
		c.Discovery.Candidates = def.Discovery.Candidates
	}
	if c.Discovery.DataDir == "" {
		c.Discovery.DataDir = def.Discovery.DataDir
	}
	if c.Config.Folder == "" {
		c.Config.Folder = def.Config.Folder
	}
	if c.Config.Source == "" {
		c.Config.Source = def.Config.Source
	}
	if c.Config.Dest == "" {
		c.Config.Dest = def.Config.Dest
	}
	if c.Config.Custom == "" {
		c.Config.Custom = def.Config.Custom
	}
	if len(c.Bundles) == 0 {
		c.Bundles = def.Bundles
	}
	if c.Fonts.Bundle == "" {
		c.Fonts.Bundle = def.Fonts.Bundle
	}
	if c.Fonts.Dir == "" {
		c.Fonts.Dir = def.Fonts.Dir
	}
	if c.Autoexec.PluginPattern == "" {
		c.Autoexec.PluginPattern = def.Autoexec.PluginPattern
	}
}
