package messages

// Discovery log lines.
const (
	LocateStart              = "Searching for the Team Fortress 2 install directory."
	LocateEnumerateFailedFmt = "Unable to list drives (%v); falling back to %s."
	LocateDriveSkippedFmt    = "Skipping drive %s: capacity %d bytes is not above the %d byte minimum."
	LocateDriveProbeFmt      = "Searching drive %s."
	LocateFoundFmt           = "Found hl2.exe at '%s'; using '%s'."
	LocateNotFound           = "Could not find a Team Fortress 2 install on any drive."
	LocateAbsFailedFmt       = "Unable to resolve '%s': %v"
)
