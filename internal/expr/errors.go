package expr

import (
	"errors"
	"fmt"
)

// Errors returned by Parse and Eval.
var (
	// ErrInvalidExpression indicates input outside the arithmetic grammar.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrDivisionByZero indicates a division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// SyntaxError locates a parse failure.
type SyntaxError struct {
	// Offset is the character offset of the offending token.
	Offset int
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid expression at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns ErrInvalidExpression.
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidExpression
}
