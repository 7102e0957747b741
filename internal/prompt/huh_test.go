package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) *int {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	calls := 0
	runFormFunc = func(form *huh.Form) error {
		calls++
		require.NotNil(t, form)
		return fn(form)
	}
	return &calls
}

func TestNewHuhConfirmer(t *testing.T) {
	c := NewHuhConfirmer()
	assert.NotNil(t, c)
	assert.NotNil(t, c.isTerminal)
	assert.False(t, c.Interrupted())
}

func TestHuhConfirmer_NoTTYAnswersNo(t *testing.T) {
	c := &HuhConfirmer{isTerminal: func() bool { return false }}
	calls := stubRunForm(t, func(*huh.Form) error { return nil })

	assert.False(t, c.Confirm("overwrite?"))
	assert.Equal(t, 0, *calls)

	_, err := c.ask("overwrite?")
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestHuhConfirmer_NilCheckerFallsBackToDefault(t *testing.T) {
	c := &HuhConfirmer{}
	stubRunForm(t, func(*huh.Form) error { return nil })
	// Tests run without a terminal, so the default check declines.
	_, err := c.ask("overwrite?")
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestHuhConfirmer_RunsForm(t *testing.T) {
	c := &HuhConfirmer{isTerminal: func() bool { return true }}
	calls := stubRunForm(t, func(*huh.Form) error { return nil })

	value, err := c.ask("overwrite?")
	require.NoError(t, err)
	assert.False(t, value, "an untouched confirm defaults to no")
	assert.Equal(t, 1, *calls)
}

func TestHuhConfirmer_EscDeclinesWithoutInterrupt(t *testing.T) {
	c := &HuhConfirmer{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	assert.False(t, c.Confirm("overwrite?"))
	assert.False(t, c.Interrupted())
}

func TestHuhConfirmer_CtrlCMarksInterrupted(t *testing.T) {
	c := &HuhConfirmer{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error {
		c.ctrlC = true
		return huh.ErrUserAborted
	})

	assert.False(t, c.Confirm("overwrite?"))
	assert.True(t, c.Interrupted())
}

func TestHuhConfirmer_FormErrorAnswersNo(t *testing.T) {
	c := &HuhConfirmer{isTerminal: func() bool { return true }}
	boom := errors.New("render failed")
	stubRunForm(t, func(*huh.Form) error { return boom })

	_, err := c.ask("overwrite?")
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Confirm("overwrite?"))
}

func TestFormFilter(t *testing.T) {
	c := &HuhConfirmer{}
	filter := c.formFilter()

	msg := filter(nil, tea.InterruptMsg{})
	assert.IsType(t, tea.QuitMsg{}, msg)
	assert.False(t, c.ctrlC)

	key := tea.KeyMsg{Type: tea.KeyCtrlC}
	assert.Equal(t, key, filter(nil, key))
	assert.True(t, c.ctrlC)

	other := tea.KeyMsg{Type: tea.KeyEsc}
	assert.Equal(t, other, filter(nil, other))
}

func TestConfirmKeyMapQuitIncludesEsc(t *testing.T) {
	km := confirmKeyMap()
	assert.ElementsMatch(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
}

func TestIsInteractiveDoesNotPanic(t *testing.T) {
	_ = IsInteractive()
}
