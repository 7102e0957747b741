package messages

// Install log messages.
const (
	LogCreateDirFmt = "create log dir %s: %w"
	LogRotateFmt    = "rotate log %s: %w"
)
