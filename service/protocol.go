// Package service exposes the extraction parser over NATS request/reply
// and serves the Prometheus metrics endpoint.
package service

import (
	"github.com/c360studio/nluentities/ontology"
)

// Error codes reported in ParseResponse.ErrorCode.
const (
	ErrCodeBadRequest          = "bad_request"
	ErrCodeUnsupportedLanguage = "unsupported_language"
	ErrCodeEngine              = "engine_error"
)

// ParseRequest asks for builtin entity extraction on a piece of text.
// EntityKinds carries wire identifiers ("snips/number"); an empty list
// means every kind supported by the language.
type ParseRequest struct {
	Text        string                       `json:"text"`
	Language    string                       `json:"language"`
	EntityKinds []ontology.BuiltinEntityKind `json:"entity_kinds,omitempty"`
}

// ParseResponse carries the extraction result. Exactly one of Entities
// or Error is meaningful: a failed call reports Error and ErrorCode and
// no entities.
type ParseResponse struct {
	RequestID string                   `json:"request_id"`
	Entities  []ontology.BuiltinEntity `json:"entities,omitempty"`
	Error     string                   `json:"error,omitempty"`
	ErrorCode string                   `json:"error_code,omitempty"`
}
