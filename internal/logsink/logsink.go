// Package logsink provides the append-only install log.
package logsink

// Sink receives install log lines. Implementations never fail the caller.
type Sink interface {
	// Write appends lines; with no arguments it appends a blank line.
	Write(lines ...string)
	// WriteError appends lines framed by dividers so errors stand out.
	WriteError(lines ...string)
	// WriteDivider appends a visual separator.
	WriteDivider()
}

// Divider separates sections of the log.
const Divider = "---------------------------------------------------------------------------------"

// Discard drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write(...string)      {}
func (discard) WriteError(...string) {}
func (discard) WriteDivider()        {}
