package engine

import (
	"errors"
	"fmt"
)

// Kinds of execution failure. Every error returned by Execute is an
// *ExecError whose Kind is one of these, so callers can test with
// errors.Is(err, engine.ErrTableNotFound).
var (
	ErrTableNotFound      = errors.New("table not found")
	ErrTableAlreadyExists = errors.New("table already exists")
	ErrColumnDoesNotExist = errors.New("column does not exist")
	ErrTypeDoesNotMatch   = errors.New("type does not match")
	ErrTableDeleteFail    = errors.New("table delete failed")
	ErrTableSaveFail      = errors.New("table save failed")
	ErrTableOpenFail      = errors.New("table open failed")
)

// ExecError reports why a statement could not be executed.
// Name is the table or column involved; for ErrTypeDoesNotMatch it is a
// description of the mismatch. Err is the underlying storage error, if any.
type ExecError struct {
	Kind error
	Name string
	Err  error
}

func (e *ExecError) Error() string {
	var msg string
	switch e.Kind {
	case ErrTableNotFound:
		msg = fmt.Sprintf("table %s was not found", e.Name)
	case ErrTableAlreadyExists:
		msg = fmt.Sprintf("table %s already exists", e.Name)
	case ErrColumnDoesNotExist:
		msg = fmt.Sprintf("column %s does not exist", e.Name)
	case ErrTypeDoesNotMatch:
		msg = fmt.Sprintf("type does not match the column definition: %s", e.Name)
	case ErrTableDeleteFail:
		msg = fmt.Sprintf("table %s delete failed", e.Name)
	case ErrTableSaveFail:
		msg = fmt.Sprintf("table %s save failed", e.Name)
	case ErrTableOpenFail:
		msg = fmt.Sprintf("table %s open failed", e.Name)
	default:
		msg = fmt.Sprintf("%v: %s", e.Kind, e.Name)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExecError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func tableNotFound(name string) error {
	return &ExecError{Kind: ErrTableNotFound, Name: name}
}

func columnDoesNotExist(name string) error {
	return &ExecError{Kind: ErrColumnDoesNotExist, Name: name}
}

func typeMismatch(format string, args ...any) error {
	return &ExecError{Kind: ErrTypeDoesNotMatch, Name: fmt.Sprintf(format, args...)}
}
