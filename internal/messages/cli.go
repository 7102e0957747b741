package messages

// CLI messages.
const (
	// RootUse is the CLI command name.
	RootUse = "neodefaults"
	// RootShort is the short description for the root command.
	RootShort = "Install the NeoDefaults config, HUD, hitsound, and fonts into Team Fortress 2"
	RootLong  = "neodefaults finds your Team Fortress 2 install and copies the NeoDefaults config, the idHUD, the hitsound, and the HUD fonts into it."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig  = "Path to a neodefaults.toml config (default: <assets>/neodefaults.toml when present)"
	FlagRoot    = "Team Fortress 2 data directory (the \"tf\" folder); skips drive discovery"
	FlagAssets  = "Directory holding the resource/ folder (default: next to the executable)"
	FlagDev     = "Development run: look for assets one directory above the executable"
	FlagYes     = "Answer yes to every prompt"
	FlagVerbose = "Mirror the install log to stderr"
	FlagLines   = "Maximum diff lines to show"

	LocateUse   = "locate"
	LocateShort = "Find and print the Team Fortress 2 data directory"

	InstallUse   = "install [config|hud|hitsound|fonts|all]..."
	InstallShort = "Install components (default: all)"
	InstallLong  = "Install one or more components. Components always run in the order config, hud, hitsound, fonts; fonts need the HUD to be extracted first."

	PreviewUse   = "preview"
	PreviewShort = "Show the autoexec.cfg change that installing the config would make"

	CLIExecutableFmt       = "resolve executable path: %w"
	CLIAssetsFmt           = "resolve assets directory: %w"
	CLIOpenLogFmt          = "open install log: %w"
	CLIFontDirFmt          = "Unable to determine the system font directory: %v"
	CLIUnknownComponentFmt = "unknown component %q (valid: %s)"
	CLIRootNotFound        = "could not find a Team Fortress 2 install; pass --root <path to tf>"
	CLIRootNotDirFmt       = "--root %s is not a directory"
	CLIRootStatFmt         = "check --root %s: %w"
	CLIInstallFailedFmt    = "%d component(s) failed; see %s"

	CLIRootFoundFmt     = "Team Fortress 2: %s\n"
	CLILogPathFmt       = "Log: %s\n"
	CLIResultFmt        = "%-10s %s\n"
	CLIResultErrorFmt   = "           %v\n"
	CLIPreviewTargetFmt = "Target: %s\n"
	CLIPreviewNewFile   = "(the file does not exist yet and will be created)"
	CLIPreviewNoChange  = "(no change)"
	CLIPreviewTruncated = "Diff truncated; rerun with --lines <n> to see more."
	CLIInstallingFmt    = "Installing %s...\n"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt    = "%s [Y/n]: "
	PromptNoDefaultFmt     = "%s [y/N]: "
	PromptInvalidResponse  = "invalid response %q"
	PromptRetryYesNo       = "Please enter y or n."
	PromptRequiresTerminal = "interactive prompt requires a terminal"
	PromptConfirmTitle     = "NeoDefaults"
	PromptStaticAnswerFmt  = "%s -> %s\n"
)
