package agent

import "fmt"

// NotFoundError indicates the agent executable could not be located via the
// standard executable search. Callers distinguish this from a child that ran
// and exited non-zero, which is reported as data in RunResult.
type NotFoundError struct {
	Executable string
	Err        error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s executable not found in PATH", e.Executable)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
