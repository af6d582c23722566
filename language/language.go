// Package language defines the closed set of natural languages supported
// by the builtin entity ontology. The set is fixed at compile time and
// gates feature availability per entity kind.
package language

import "fmt"

// Language identifies a supported natural language by its ISO 639-1 code.
type Language string

const (
	// DE is German.
	DE Language = "de"

	// EN is English.
	EN Language = "en"

	// ES is Spanish.
	ES Language = "es"

	// FR is French.
	FR Language = "fr"

	// JA is Japanese.
	JA Language = "ja"

	// KO is Korean.
	KO Language = "ko"
)

// all lists every supported language in stable iteration order.
var all = []Language{DE, EN, ES, FR, JA, KO}

// All returns every supported language in a stable order.
// The returned slice must not be mutated by callers.
func All() []Language {
	return all
}

// FromCode resolves an ISO 639-1 code to a Language.
func FromCode(code string) (Language, error) {
	for _, l := range all {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language code: %q", code)
}

// IsValid checks whether l is one of the supported languages.
func (l Language) IsValid() bool {
	switch l {
	case DE, EN, ES, FR, JA, KO:
		return true
	}
	return false
}

// String returns the ISO 639-1 code.
func (l Language) String() string {
	return string(l)
}

// FullName returns the English name of the language.
func (l Language) FullName() string {
	switch l {
	case DE:
		return "German"
	case EN:
		return "English"
	case ES:
		return "Spanish"
	case FR:
		return "French"
	case JA:
		return "Japanese"
	case KO:
		return "Korean"
	}
	return ""
}
