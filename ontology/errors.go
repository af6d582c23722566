package ontology

import "fmt"

// UnknownIdentifierError is returned when an entity kind identifier string
// does not match any registered kind.
type UnknownIdentifierError struct {
	Identifier string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown entity kind identifier: %q", e.Identifier)
}

// EncodingError is returned when serialization of static ontology data
// fails. It indicates a programming defect rather than bad input.
type EncodingError struct {
	err error
}

func (e *EncodingError) Error() string {
	return "encoding ontology data: " + e.err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.err
}

// NewEncodingError wraps an error as an EncodingError.
func NewEncodingError(err error) error {
	return &EncodingError{err: err}
}
