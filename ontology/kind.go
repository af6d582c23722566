// Package ontology defines the builtin entity ontology: the closed set of
// entity kinds, the typed value model for recognized values, and the
// builtin entity record with its stable wire contract.
//
// All kind metadata (identifiers, descriptions, examples, supported
// languages) is process-wide immutable constant data; the package holds no
// mutable state.
package ontology

import (
	"encoding/json"

	"github.com/c360studio/nluentities/language"
)

// BuiltinEntityKind identifies a category of builtin entity.
type BuiltinEntityKind string

const (
	// AmountOfMoney matches amounts of money.
	AmountOfMoney BuiltinEntityKind = "AmountOfMoney"

	// Duration matches time durations.
	Duration BuiltinEntityKind = "Duration"

	// Number matches cardinal numbers.
	Number BuiltinEntityKind = "Number"

	// Ordinal matches ordinal numbers.
	Ordinal BuiltinEntityKind = "Ordinal"

	// Temperature matches temperatures.
	Temperature BuiltinEntityKind = "Temperature"

	// Time matches dates, times, intervals or date and time together.
	Time BuiltinEntityKind = "Time"

	// Percentage matches percentages.
	Percentage BuiltinEntityKind = "Percentage"
)

// allKinds is the registry iteration order. The order is part of the
// contract: lookups and serialized kind lists are deterministic.
var allKinds = []BuiltinEntityKind{
	AmountOfMoney,
	Duration,
	Number,
	Ordinal,
	Temperature,
	Time,
	Percentage,
}

// AllKinds returns every entity kind in stable registry order.
// The returned slice must not be mutated by callers.
func AllKinds() []BuiltinEntityKind {
	return allKinds
}

// Identifier returns the stable, globally unique wire identifier of the
// kind. Identifiers round-trip through FromIdentifier.
func (k BuiltinEntityKind) Identifier() string {
	switch k {
	case AmountOfMoney:
		return "snips/amountOfMoney"
	case Duration:
		return "snips/duration"
	case Number:
		return "snips/number"
	case Ordinal:
		return "snips/ordinal"
	case Temperature:
		return "snips/temperature"
	case Time:
		return "snips/datetime"
	case Percentage:
		return "snips/percentage"
	}
	return ""
}

// FromIdentifier resolves a wire identifier to its entity kind.
func FromIdentifier(identifier string) (BuiltinEntityKind, error) {
	for _, k := range allKinds {
		if k.Identifier() == identifier {
			return k, nil
		}
	}
	return "", &UnknownIdentifierError{Identifier: identifier}
}

// IsValid checks whether k is a registered entity kind.
func (k BuiltinEntityKind) IsValid() bool {
	switch k {
	case AmountOfMoney, Duration, Number, Ordinal, Temperature, Time, Percentage:
		return true
	}
	return false
}

// String returns the kind name.
func (k BuiltinEntityKind) String() string {
	return string(k)
}

// Description returns the human-readable description of the kind.
func (k BuiltinEntityKind) Description() string {
	switch k {
	case AmountOfMoney:
		return "Matches amount of money"
	case Duration:
		return "Matches time duration"
	case Number:
		return "Matches a cardinal numbers"
	case Ordinal:
		return "Matches a ordinal numbers"
	case Temperature:
		return "Matches a temperature"
	case Time:
		return "Matches date, time, intervals or date and time together"
	case Percentage:
		return "Matches a percentage"
	}
	return ""
}

// SupportedLanguages returns the languages the kind is available for.
// Every kind supports all six languages except Percentage, which has no
// Korean support. Support is authoritative here and must not be inferred
// from example presence.
func (k BuiltinEntityKind) SupportedLanguages() []language.Language {
	if k == Percentage {
		return []language.Language{
			language.DE,
			language.EN,
			language.ES,
			language.FR,
			language.JA,
		}
	}
	return []language.Language{
		language.DE,
		language.EN,
		language.ES,
		language.FR,
		language.JA,
		language.KO,
	}
}

// SupportedKinds returns the entity kinds available for a language, in
// registry order.
func SupportedKinds(l language.Language) []BuiltinEntityKind {
	kinds := make([]BuiltinEntityKind, 0, len(allKinds))
	for _, k := range allKinds {
		if k.Supports(l) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Supports reports whether the kind is available for the given language.
func (k BuiltinEntityKind) Supports(l language.Language) bool {
	for _, supported := range k.SupportedLanguages() {
		if supported == l {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the kind as its wire identifier.
func (k BuiltinEntityKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Identifier())
}

// UnmarshalJSON decodes a wire identifier into the kind.
func (k *BuiltinEntityKind) UnmarshalJSON(data []byte) error {
	var identifier string
	if err := json.Unmarshal(data, &identifier); err != nil {
		return err
	}
	kind, err := FromIdentifier(identifier)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
