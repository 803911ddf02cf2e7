package config

import "fmt"

// Error is the configuration failure taxonomy: unreadable or malformed files,
// invalid environment overrides, out-of-range fields, and unwritable
// destinations. It always names the offending file path or variable.
type Error struct {
	Path string // offending config file or directory, if any
	Var  string // offending environment variable, if any
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("config file %s: %s", e.Path, e.Msg)
	case e.Var != "":
		return fmt.Sprintf("%s: %s", e.Var, e.Msg)
	default:
		// Without a path or variable, the wrapped field errors are the only
		// thing that names what went wrong; render them.
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Msg, e.Err)
		}
		return e.Msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// FieldError reports one invalid field found during validation.
type FieldError struct {
	Field string
	Msg   string
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }
