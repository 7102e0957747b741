package install

// Outcome is the result class of an install operation.
type Outcome int

const (
	// Failure means the component was not (fully) installed.
	Failure Outcome = iota
	// Success means the component was installed.
	Success
	// OptedOut means the user declined to overwrite an existing install.
	OptedOut
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case OptedOut:
		return "opted out"
	default:
		return "failure"
	}
}

// Result reports the outcome of installing one component. Err is set only
// for Failure.
type Result struct {
	Component string
	Outcome   Outcome
	Err       error
}

func failure(component string, err error) Result {
	return Result{Component: component, Outcome: Failure, Err: err}
}
