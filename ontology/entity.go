package ontology

import (
	"encoding/json"
	"fmt"
)

// Range is a half-open [start, end) byte offset pair into the source text.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// BuiltinEntity is one recognized occurrence of a builtin entity inside
// free text. It is created by the conversion layer from one raw engine
// match and is immutable thereafter.
type BuiltinEntity struct {
	// Value is the matched substring, byte-identical to the source text
	// slice covered by Range.
	Value string `json:"value"`

	// Range locates the match inside the source text.
	Range Range `json:"range"`

	// Entity is the typed, normalized value.
	Entity SlotValue `json:"entity"`

	// EntityKind tags the entity category; serialized as the kind's wire
	// identifier (e.g. "snips/datetime").
	EntityKind BuiltinEntityKind `json:"entity_kind"`
}

// Validate checks the record's structural invariants against the source
// text it was extracted from.
func (e *BuiltinEntity) Validate(text string) error {
	if e.Range.Start < 0 || e.Range.Start > e.Range.End || e.Range.End > len(text) {
		return fmt.Errorf("entity range [%d, %d) out of bounds for text of length %d",
			e.Range.Start, e.Range.End, len(text))
	}
	if e.Value != text[e.Range.Start:e.Range.End] {
		return fmt.Errorf("entity value %q does not match text slice %q",
			e.Value, text[e.Range.Start:e.Range.End])
	}
	if e.Entity == nil {
		return fmt.Errorf("entity value is required")
	}
	if e.Entity.Kind() != e.EntityKind {
		return fmt.Errorf("slot value kind %s does not match entity kind %s",
			e.Entity.Kind(), e.EntityKind)
	}
	return nil
}

// UnmarshalJSON decodes a builtin entity, resolving the polymorphic slot
// value by its discriminator and cross-checking it against entity_kind.
func (e *BuiltinEntity) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Value      string            `json:"value"`
		Range      Range             `json:"range"`
		Entity     json.RawMessage   `json:"entity"`
		EntityKind BuiltinEntityKind `json:"entity_kind"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	value, err := UnmarshalSlotValue(envelope.Entity)
	if err != nil {
		return err
	}
	if value.Kind() != envelope.EntityKind {
		return fmt.Errorf("slot value kind %s does not match entity kind %s",
			value.Kind(), envelope.EntityKind)
	}

	e.Value = envelope.Value
	e.Range = envelope.Range
	e.Entity = value
	e.EntityKind = envelope.EntityKind
	return nil
}
