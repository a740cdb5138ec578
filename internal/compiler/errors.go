package compiler

import "fmt"

// Kind classifies a compile error.
type Kind int

const (
	// ErrScope is a macro redefinition or an out-of-scope reference.
	ErrScope Kind = iota
	// ErrCategory is a character range with mixed categories or with
	// start not before end.
	ErrCategory
	// ErrOperator is an unknown operator name.
	ErrOperator
	// ErrInversion is an attempt to invert an expression that has no
	// defined inverse.
	ErrInversion
	// ErrPlacement is a macro definition outside the direct items of a
	// concatenation.
	ErrPlacement
)

// Error is a compile-time error. The compiler aborts on the first one
// and produces no partial output.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
