package messages

// Install messages. Log lines are written to the install log; Fmt constants
// ending in %w build wrapped errors.
const (
	// InstallRootUnresolved indicates an install ran before the TF2 directory was found.
	InstallRootUnresolved   = "the Team Fortress 2 directory has not been located"
	InstallRootAlreadySet   = "install root is already set"
	InstallSystemRequired   = "install system is required"
	InstallLogRequired      = "install log sink is required"
	InstallConfirmRequired  = "install confirmer is required"
	InstallUnknownBundleFmt = "unknown component %q"
	InstallPanicFmt         = "%s install panicked: %v"

	InstallSourceMissingFmt       = "source %s does not exist: %w"
	InstallDestinationParentFmt   = "parent directory of %s does not exist: %w"
	InstallDestinationExistsFmt   = "attempted to create %s from %s, but the file already exists"
	InstallCopyFailedFmt          = "copy %s to %s failed after %d attempts: %w"
	InstallCopyRetryFmt           = "Copy of %s failed (%v); retrying in %s."
	InstallRemoveExistingFmt      = "remove existing install %s: %w"
	InstallOpenArchiveFmt         = "open archive %s: %w"
	InstallArchiveEntryEscapesFmt = "archive entry %q escapes %s"
	InstallExtractEntryFmt        = "extract %s: %w"
	InstallCreateDirFmt           = "create directory %s: %w"
	InstallMakeWritableFmt        = "clear read-only flag on %s: %w"
	InstallMakeReadOnlyFmt        = "mark %s read-only: %w"
	InstallListPluginsFmt         = "list %s: %w"
	InstallReadAutoexecFmt        = "read %s: %w"
	InstallAppendAutoexecFmt      = "append to %s: %w"
	InstallListFontsFmt           = "list fonts in %s: %w"
	InstallCopyFontFmt            = "install font %s: %w"

	InstallBundleExistsPromptFmt = "An install of the %s was detected at '%s'. Would you like to continue and overwrite the existing files, or skip the installation of this component?"
	InstallBundleOptedOutFmt     = "The %s was already installed, and the user opted out of re-installing."
	InstallBundleDeletingFmt     = "'%s' was found to already exist. Deleting in preparation for re-install."
	InstallBundleStartFmt        = "Installing %s from '%s' to '%s'."
	InstallBundleDoneFmt         = "%s installation complete."
	InstallBundleMissingLeafFmt  = "Warning: extracting %s did not produce '%s'; the archive root may be misnamed."
	InstallBundleFailedFmt       = "An error occurred when trying to install the %s:"

	InstallConfigDirFailed      = "An error occurred when trying to create the base folder for the config."
	InstallConfigCopyStartFmt   = "Installing config file from '%s' to '%s'."
	InstallConfigCopyFailedFmt  = "An error occurred when trying to create '%s' from '%s'."
	InstallAutoexecFailed       = "An error occurred when trying to append to autoexec.cfg."
	InstallAutoexecNotice       = "Tried to modify 'autoexec.cfg' and failed. To fix this, try re-running the installation. If the problem persists, check the FAQ for advice on dealing with errors."
	InstallCustomFailedFmt      = "Failed to create the %s file."
	InstallCustomKeptFmt        = "Keeping the existing %s; user settings are never overwritten."
	InstallConfigDone           = "Config installation complete."
	InstallAutoexecTargetFmt    = "Appending the exec directive to '%s'."
	InstallAutoexecPluginFmt    = "Detected plugin file '%s'; using the plugin-aware autoexec location."
	InstallAutoexecDuplicateFmt = "'%s' already executes %s; appending the directive again."

	InstallFontsPrepareFailed  = "Failed to prepare the fonts for installation."
	InstallFontsListFailed     = "Was unable to retrieve the fonts that need to be installed:"
	InstallFontSkipFmt         = "The font, %s, is already installed. Skipping."
	InstallFontStartFmt        = "Installing '%s' font to '%s'."
	InstallFontFailed          = "An error occurred when trying to install the fonts for the HUD."
	InstallFontRegisterFailFmt = "Copied %s but could not register it with the system: %v"
	InstallFontsDone           = "Font installation complete."

	AutoexecHeader  = "//--------Added by the NeoDefaults Installer--------//"
	AutoexecFooter  = "//--------------------------------------------------//"
	AutoexecExecFmt = "exec %s/%s"

	PreviewTruncatedFmt = "... (truncated to %d lines)"
)
