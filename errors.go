package rsx

import "fmt"

// ParseError is the base error type for all rsx errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string, invalid
// character, unbalanced delimiter).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error. Structural faults carry a
// Message; token-level mismatches carry Expected/Got instead.
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, msg)
	}
	return msg
}

// syntaxError reports a structural fault with a fixed message.
func syntaxError(pos Position, message string) *SyntaxError {
	return &SyntaxError{ParseError: ParseError{Message: message, Pos: pos}}
}

// expectedError reports a token-level mismatch.
func expectedError(pos Position, expected, got string) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Pos: pos},
		Expected:   expected,
		Got:        got,
	}
}
