package install

import (
	"errors"
	"fmt"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// Error classes returned (wrapped) by install operations. Check with errors.Is.
var (
	// ErrPrecondition marks failures detected before any side effect.
	ErrPrecondition = errors.New("precondition failed")
	// ErrDestinationExists is returned by a non-overwriting copy onto an existing file.
	ErrDestinationExists = fmt.Errorf("%w: destination exists", ErrPrecondition)
	// ErrRootUnresolved is returned when an install runs before the TF2 directory is known.
	ErrRootUnresolved = fmt.Errorf("%w: %s", ErrPrecondition, messages.InstallRootUnresolved)
	// ErrRootAlreadySet is returned by a second InstallRoot.Set.
	ErrRootAlreadySet = errors.New(messages.InstallRootAlreadySet)

	ErrTransientIO = errors.New("file operation failed")
	ErrExtraction  = errors.New("archive extraction failed")
	ErrPatch       = errors.New("startup script patch failed")
)
