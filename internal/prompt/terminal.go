// Package prompt asks the user yes/no questions during an install.
package prompt

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stderr are both terminals. Forms
// render on stderr so stdout stays clean for results.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}
