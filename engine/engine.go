// Package engine defines the contract between the parser facade and the
// per-language parsing engines that produce raw candidate matches.
//
// An engine is a black box: given text it returns loosely-typed matches
// with spans and kind-specific raw fields. The conversion layer in the
// parser package is responsible for turning raw matches into validated
// slot values; engines are not trusted to be consistent.
package engine

import (
	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/ontology"
)

// RawMatch is one candidate entity produced by an engine. Only the fields
// relevant to the declared kind are populated; the conversion layer
// validates presence and consistency.
type RawMatch struct {
	// Kind is the entity kind the engine claims to have recognized.
	Kind ontology.BuiltinEntityKind

	// Start and End are half-open byte offsets into the source text.
	Start int
	End   int

	// Text is the matched substring.
	Text string

	// Number carries the numeric value for Number, Percentage,
	// AmountOfMoney and Temperature matches.
	Number *float64

	// Ordinal carries the value for Ordinal matches.
	Ordinal *int64

	// Unit is the raw unit string for AmountOfMoney and Temperature
	// matches. Empty means the engine recognized no unit.
	Unit string

	// Approximate is the raw precision flag. Engines that do not track
	// precision leave it false, which maps to exact.
	Approximate bool

	// Duration carries component counts for Duration matches. Nil
	// components default to zero during conversion.
	Duration *RawDuration

	// Instant is the fully qualified timestamp string for instant Time
	// matches, including a UTC offset.
	Instant string

	// Grain is the grain name accompanying an instant Time match.
	Grain string

	// From and To are the bounds of an interval Time match. An interval
	// match is one with no Instant; at least one bound must be set.
	From string
	To   string
}

// RawDuration holds raw duration component counts. Nil means the engine
// did not produce the component.
type RawDuration struct {
	Years    *int64
	Quarters *int64
	Months   *int64
	Weeks    *int64
	Days     *int64
	Hours    *int64
	Minutes  *int64
	Seconds  *int64
}

// Engine recognizes builtin entity candidates in text for one language.
//
// Implementations must be safe for concurrent use after construction:
// the facade builds one engine per language and shares it between all
// callers without coordination.
type Engine interface {
	// Matches returns raw candidate matches for the requested kinds.
	// The kinds slice is never empty and contains only kinds supported
	// by the engine's language.
	Matches(text string, kinds []ontology.BuiltinEntityKind) ([]RawMatch, error)
}

// Provider constructs the engine for a language. Construction is
// expensive (rule compilation); the facade calls a provider at most once
// per language and caches the result, including failures.
type Provider func(lang language.Language) (Engine, error)

// Int64 returns a pointer to v, for populating RawDuration components.
func Int64(v int64) *int64 {
	return &v
}

// Float64 returns a pointer to v, for populating RawMatch numbers.
func Float64(v float64) *float64 {
	return &v
}
