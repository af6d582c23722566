package ontology

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/nluentities/language"
)

func TestFromIdentifier_RoundTrip(t *testing.T) {
	for _, k := range AllKinds() {
		t.Run(k.String(), func(t *testing.T) {
			got, err := FromIdentifier(k.Identifier())
			require.NoError(t, err)
			assert.Equal(t, k, got)
		})
	}
}

func TestFromIdentifier_Unknown(t *testing.T) {
	tests := []string{"", "snips/unknown", "number", "snips/Number", "snips/datetime "}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, err := FromIdentifier(id)
			require.Error(t, err)

			var unknownErr *UnknownIdentifierError
			require.ErrorAs(t, err, &unknownErr)
			assert.Equal(t, id, unknownErr.Identifier)
		})
	}
}

func TestIdentifiers_Injective(t *testing.T) {
	seen := map[string]BuiltinEntityKind{}
	for _, k := range AllKinds() {
		id := k.Identifier()
		require.NotEmpty(t, id)
		if prev, ok := seen[id]; ok {
			t.Fatalf("identifier %q shared by %s and %s", id, prev, k)
		}
		seen[id] = k
	}
}

func TestAllKinds_StableOrder(t *testing.T) {
	want := []BuiltinEntityKind{
		AmountOfMoney,
		Duration,
		Number,
		Ordinal,
		Temperature,
		Time,
		Percentage,
	}
	assert.Equal(t, want, AllKinds())
	assert.Equal(t, AllKinds(), AllKinds())
}

func TestSupportedLanguages(t *testing.T) {
	allLanguages := []language.Language{
		language.DE, language.EN, language.ES,
		language.FR, language.JA, language.KO,
	}

	for _, k := range AllKinds() {
		t.Run(k.String(), func(t *testing.T) {
			if k == Percentage {
				// Percentage is the only kind without Korean support.
				assert.Equal(t, []language.Language{
					language.DE, language.EN, language.ES,
					language.FR, language.JA,
				}, k.SupportedLanguages())
				assert.False(t, k.Supports(language.KO))
				return
			}
			assert.Equal(t, allLanguages, k.SupportedLanguages())
		})
	}
}

func TestExamples_Presence(t *testing.T) {
	// Japanese currently ships examples for Number only; every other
	// supported kind/language pair has at least one example.
	jaEmpty := map[BuiltinEntityKind]bool{
		AmountOfMoney: true,
		Duration:      true,
		Ordinal:       true,
		Temperature:   true,
		Time:          true,
		Percentage:    true,
	}

	for _, k := range AllKinds() {
		for _, l := range k.SupportedLanguages() {
			examples := k.Examples(l)
			if l == language.JA {
				if jaEmpty[k] {
					assert.Empty(t, examples, "%s/%s", k, l)
				} else {
					assert.NotEmpty(t, examples, "%s/%s", k, l)
				}
				continue
			}
			assert.NotEmpty(t, examples, "%s/%s", k, l)
		}
	}
}

func TestExamples_JapaneseNumberOnly(t *testing.T) {
	assert.Equal(t, []string{"十二", "二千五", "四千三百二"}, Number.Examples(language.JA))
}

func TestResultDescription_Percentage(t *testing.T) {
	description, err := Percentage.ResultDescription()
	require.NoError(t, err)

	want := "[\n  {\n    \"kind\": \"Percentage\",\n    \"value\": 20\n  }\n]"
	assert.Equal(t, want, description)
}

func TestResultDescription_Time(t *testing.T) {
	description, err := Time.ResultDescription()
	require.NoError(t, err)

	var payload []map[string]any
	require.NoError(t, json.Unmarshal([]byte(description), &payload))
	require.Len(t, payload, 2)
	assert.Equal(t, "InstantTime", payload[0]["kind"])
	assert.Equal(t, "TimeInterval", payload[1]["kind"])
}

func TestResultDescription_AllKinds(t *testing.T) {
	for _, k := range AllKinds() {
		t.Run(k.String(), func(t *testing.T) {
			description, err := k.ResultDescription()
			require.NoError(t, err)

			var payload []map[string]any
			require.NoError(t, json.Unmarshal([]byte(description), &payload))
			assert.NotEmpty(t, payload)
		})
	}
}

func TestKindJSON_Codec(t *testing.T) {
	for _, k := range AllKinds() {
		t.Run(k.String(), func(t *testing.T) {
			data, err := json.Marshal(k)
			require.NoError(t, err)
			assert.JSONEq(t, `"`+k.Identifier()+`"`, string(data))

			var decoded BuiltinEntityKind
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, k, decoded)
		})
	}

	var decoded BuiltinEntityKind
	err := json.Unmarshal([]byte(`"snips/bogus"`), &decoded)
	require.Error(t, err)

	var unknownErr *UnknownIdentifierError
	assert.True(t, errors.As(err, &unknownErr))
}
