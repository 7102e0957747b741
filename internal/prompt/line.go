package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// LineConfirmer asks y/n questions on a line-oriented reader, for pipes and
// other non-terminal input. Empty input takes the default; end of input
// answers no.
type LineConfirmer struct {
	mu         sync.Mutex
	in         *bufio.Reader
	out        io.Writer
	defaultYes bool
}

// NewLineConfirmer reads answers from in and writes prompts to out.
func NewLineConfirmer(in io.Reader, out io.Writer, defaultYes bool) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewReader(in), out: out, defaultYes: defaultYes}
}

// Confirm asks message and returns the answer; read errors answer no.
func (c *LineConfirmer) Confirm(message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	answer, err := promptYesNo(c.in, c.out, message, c.defaultYes)
	if err != nil {
		return false
	}
	return answer
}

func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	for {
		if defaultYes {
			if _, err := fmt.Fprintf(out, messages.PromptYesDefaultFmt, prompt); err != nil {
				return false, err
			}
		} else {
			if _, err := fmt.Fprintf(out, messages.PromptNoDefaultFmt, prompt); err != nil {
				return false, err
			}
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			if err == nil {
				return defaultYes, nil
			}
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidResponse, response)
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}
