package install

// Confirmer asks the user a yes/no question and blocks until answered. It is
// also used for informational notices, where the answer is ignored.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function into a Confirmer. A nil func declines.
type ConfirmFunc func(message string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(message string) bool {
	if f == nil {
		return false
	}
	return f(message)
}
