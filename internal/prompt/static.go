package prompt

import (
	"fmt"
	"io"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// Static answers every question the same way. When Out is set each question
// is echoed with its answer so unattended runs still show notices.
type Static struct {
	Answer bool
	Out    io.Writer
}

// Confirm returns s.Answer.
func (s Static) Confirm(message string) bool {
	if s.Out != nil {
		answer := "no"
		if s.Answer {
			answer = "yes"
		}
		_, _ = fmt.Fprintf(s.Out, messages.PromptStaticAnswerFmt, message, answer)
	}
	return s.Answer
}
