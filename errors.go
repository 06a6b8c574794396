// Package sqlfql translates a restricted subset of SQL into FQL, the
// functional query algebra of a document database, and drives execution
// of the translated query against it.
package sqlfql

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the package's error taxonomy. Wrap one of these
// with a construct-specific message via notSupportedf/programmingf so
// callers can both errors.Is against the taxonomy and match the literal
// message fragments the SQL surface promises.
var (
	// ErrNotSupported means the input used a SQL construct outside the
	// supported subset: multiple statements, multiple tables, OR in a
	// WHERE clause, a non-equality comparison, an unrecognized
	// INFORMATION_SCHEMA query, and so on.
	ErrNotSupported = errors.New("not supported")

	// ErrProgramming means the input was syntactically recognizable but
	// semantically malformed: an assignment missing "=", a duplicate
	// value written to a UNIQUE column.
	ErrProgramming = errors.New("programming error")

	// ErrInternal wraps an unexpected error from the document database
	// after the formatted SQL that triggered it has been logged.
	ErrInternal = errors.New("internal error")

	// errUnexpectedShape means a document database response decoded to
	// a shape the caller did not expect (e.g. a list where a single
	// document was required).
	errUnexpectedShape = errors.New("unexpected response shape")
)

// NotSupportedError reports a SQL construct outside the supported subset.
type NotSupportedError struct {
	Op      string
	Message string
}

func (e *NotSupportedError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *NotSupportedError) Unwrap() error { return ErrNotSupported }

func notSupportedf(op, format string, args ...any) error {
	return &NotSupportedError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// ProgrammingError reports syntactically valid but semantically invalid input.
type ProgrammingError struct {
	Op      string
	Message string
}

func (e *ProgrammingError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ProgrammingError) Unwrap() error { return ErrProgramming }

func programmingf(op, format string, args ...any) error {
	return &ProgrammingError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// internalf wraps an unexpected error surfaced by the document database.
// errors.Is matches both ErrInternal and the wrapped cause.
func internalf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}
