package prompt

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// ErrNotInteractive is returned when a form is requested without a terminal.
var ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)

// HuhConfirmer asks questions with a charmbracelet/huh confirm form.
// Esc answers no; Ctrl+C answers no and marks the confirmer interrupted.
type HuhConfirmer struct {
	isTerminal func() bool

	// mu serializes forms; only one can own the terminal.
	mu          sync.Mutex
	ctrlC       bool
	interrupted atomic.Bool
}

// NewHuhConfirmer creates a HuhConfirmer using the default terminal check.
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{isTerminal: IsInteractive}
}

// Confirm shows message and returns the user's answer. Any form error,
// including a missing terminal, answers no.
func (c *HuhConfirmer) Confirm(message string) bool {
	value, err := c.ask(message)
	if err != nil {
		return false
	}
	return value
}

// Interrupted reports whether the user pressed Ctrl+C in any form.
func (c *HuhConfirmer) Interrupted() bool {
	return c.interrupted.Load()
}

func (c *HuhConfirmer) ask(message string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	checker := c.isTerminal
	if checker == nil {
		checker = IsInteractive
	}
	if !checker() {
		return false, ErrNotInteractive
	}

	var value bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(messages.PromptConfirmTitle).
				Description(message).
				Value(&value),
		),
	)
	c.ctrlC = false
	form.WithKeyMap(confirmKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(c.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if c.ctrlC {
			c.interrupted.Store(true)
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value, nil
}

// confirmKeyMap makes Esc abort the form as well as Ctrl+C.
func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "no"))
	return km
}

// formFilter records Ctrl+C and turns InterruptMsg into QuitMsg so bubbletea
// shuts down gracefully and clears the form.
func (c *HuhConfirmer) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			c.ctrlC = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}
