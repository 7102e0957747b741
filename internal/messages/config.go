package messages

// Config messages for installer configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt    = "missing config file %s: %w"
	ConfigInvalidConfigFmt  = "invalid config %s: %w"
	ConfigUnknownKeysFmt    = "%s contains unrecognized keys: %w"
	ConfigValidationSuffix  = "(fix the file or delete it to use the built-in defaults)"
	ConfigExpandPathFmt     = "expand path %q: %w"
	ConfigUserCacheDirFmt   = "resolve user cache dir: %w"
	ConfigFontDirUnknownFmt = "cannot determine the system font directory: %s is not set"

	ConfigMinDriveSizeInvalidFmt   = "%s: discovery.min_drive_size_gb must be greater than zero"
	ConfigCandidatesRequiredFmt    = "%s: discovery.candidates must list at least one path"
	ConfigCandidateAbsoluteFmt     = "%s: discovery.candidates[%d] %q must be relative to a drive root"
	ConfigDataDirRequiredFmt       = "%s: discovery.data_dir is required"
	ConfigFolderRequiredFmt        = "%s: config.folder is required"
	ConfigSourceRequiredFmt        = "%s: config.source is required"
	ConfigDestRequiredFmt          = "%s: config.dest is required"
	ConfigCustomRequiredFmt        = "%s: config.custom is required"
	ConfigCustomSameAsDestFmt      = "%s: config.custom must differ from config.dest"
	ConfigBundlesRequiredFmt       = "%s: at least one [[bundles]] entry is required"
	ConfigBundleIDRequiredFmt      = "%s: bundles[%d].id is required"
	ConfigBundleIDDuplicateFmt     = "%s: bundles[%d].id %q duplicates bundles[%d].id"
	ConfigBundleArchiveRequiredFmt = "%s: bundles[%d].archive is required"
	ConfigBundleDirRequiredFmt     = "%s: bundles[%d].dir is required"
	ConfigBundleDirNestedFmt       = "%s: bundles[%d].dir %q must be a single directory name"
	ConfigFontsBundleUnknownFmt    = "%s: fonts.bundle %q does not match any bundles[].id"
	ConfigFontsDirRequiredFmt      = "%s: fonts.dir is required"
	ConfigPluginPatternInvalidFmt  = "%s: autoexec.plugin_pattern %q is not a valid pattern: %v"
)
