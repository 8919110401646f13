package document

import (
	"errors"
	"fmt"
)

var (
	// ErrJSONSyntax marks input that is not valid JSON.
	ErrJSONSyntax = errors.New("invalid JSON")
	// ErrMalformedDocument marks valid JSON whose top level is not an object.
	ErrMalformedDocument = errors.New("malformed document: top level is not a JSON object")
)

// SyntaxError reports where JSON parsing failed.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrJSONSyntax, e.Err}
}
