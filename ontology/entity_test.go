package ontology

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinEntity_JSONRoundTrip(t *testing.T) {
	entity := BuiltinEntity{
		Value: "hello",
		Range: Range{Start: 12, End: 42},
		Entity: InstantTimeValue{
			Value:     "some_value",
			Grain:     GrainYear,
			Precision: PrecisionExact,
		},
		EntityKind: Time,
	}

	data, err := json.Marshal(entity)
	require.NoError(t, err)

	want := `{
		"value": "hello",
		"range": {"start": 12, "end": 42},
		"entity": {
			"kind": "InstantTime",
			"value": "some_value",
			"grain": "Year",
			"precision": "Exact"
		},
		"entity_kind": "snips/datetime"
	}`
	assert.JSONEq(t, want, string(data))

	var decoded BuiltinEntity
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entity, decoded)
}

func TestBuiltinEntity_UnmarshalKindMismatch(t *testing.T) {
	data := `{
		"value": "42",
		"range": {"start": 0, "end": 2},
		"entity": {"kind": "Number", "value": 42},
		"entity_kind": "snips/datetime"
	}`

	var decoded BuiltinEntity
	err := json.Unmarshal([]byte(data), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match entity kind")
}

func TestBuiltinEntity_UnmarshalUnknownKind(t *testing.T) {
	data := `{
		"value": "42",
		"range": {"start": 0, "end": 2},
		"entity": {"kind": "Number", "value": 42},
		"entity_kind": "snips/bogus"
	}`

	var decoded BuiltinEntity
	err := json.Unmarshal([]byte(data), &decoded)
	require.Error(t, err)

	var unknownErr *UnknownIdentifierError
	require.ErrorAs(t, err, &unknownErr)
}

func TestBuiltinEntity_Validate(t *testing.T) {
	text := "three hundred and four pages"
	valid := BuiltinEntity{
		Value:      "three hundred and four",
		Range:      Range{Start: 0, End: 22},
		Entity:     NumberValue{Value: 304},
		EntityKind: Number,
	}
	require.NoError(t, valid.Validate(text))

	tests := []struct {
		name   string
		modify func(*BuiltinEntity)
	}{
		{
			name:   "end beyond text",
			modify: func(e *BuiltinEntity) { e.Range.End = len(text) + 1 },
		},
		{
			name:   "negative start",
			modify: func(e *BuiltinEntity) { e.Range.Start = -1 },
		},
		{
			name:   "inverted range",
			modify: func(e *BuiltinEntity) { e.Range.Start = 23 },
		},
		{
			name:   "value does not match slice",
			modify: func(e *BuiltinEntity) { e.Value = "three hundred" },
		},
		{
			name:   "missing slot value",
			modify: func(e *BuiltinEntity) { e.Entity = nil },
		},
		{
			name:   "kind mismatch",
			modify: func(e *BuiltinEntity) { e.EntityKind = Ordinal },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity := valid
			tt.modify(&entity)
			assert.Error(t, entity.Validate(text))
		})
	}
}
