package climux

import "strings"

// ParseError carries the ordered list of failures produced while parsing,
// together with a best-effort partial value. The partial value is not
// guaranteed to be complete or internally consistent - it exists so that
// upstream layers can report what was understood before the failure point.
type ParseError struct {
	Errs    []error
	Partial any
}

// NewParseError builds a ParseError from a partial value and one or more
// underlying errors.
func NewParseError(partial any, errs ...error) *ParseError {
	return &ParseError{Errs: errs, Partial: partial}
}

// Error joins the accumulated messages in order.
func (e *ParseError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "; ")
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	return e.Errs
}

// Result holds exactly one of a parsed value or a *ParseError. There is no
// implicit coercion between the two variants - callers must branch on
// IsOk/IsErr before reading either side.
type Result[T any] struct {
	value T
	err   *ParseError
}

// Ok constructs the success variant.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs the failure variant.
func Err[T any](err *ParseError) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the parsed value. On the failure variant it returns the
// zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the parse error, or nil on the success variant.
func (r Result[T]) Err() *ParseError {
	return r.err
}
