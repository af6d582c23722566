package parser

import (
	"fmt"

	"github.com/c360studio/nluentities/language"
)

// Error types for classifying extraction failures. Per-match conversion
// failures are absorbed by Extract; call-level failures propagate.

// ConversionError reports that a single raw engine match could not be
// normalized into the value model. The offending match is dropped and the
// rest of the extraction continues.
type ConversionError struct {
	Reason string
}

func (e *ConversionError) Error() string {
	return "conversion: " + e.Reason
}

// NewConversionError creates a ConversionError with a formatted reason.
func NewConversionError(format string, args ...any) error {
	return &ConversionError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedLanguageError reports that the requested language has no
// configured engine. It fails the whole Extract call.
type UnsupportedLanguageError struct {
	Language language.Language
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %q", string(e.Language))
}

// EngineError reports that the engine for a language failed to build or
// errored during invocation. It fails the whole Extract call and is never
// silently retried.
type EngineError struct {
	Language language.Language
	err      error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine for %s: %s", e.Language, e.err.Error())
}

func (e *EngineError) Unwrap() error {
	return e.err
}

// NewEngineError wraps an engine failure for a language.
func NewEngineError(lang language.Language, err error) error {
	return &EngineError{Language: lang, err: err}
}
