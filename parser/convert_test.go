package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/nluentities/engine"
	"github.com/c360studio/nluentities/ontology"
)

func TestConvertDuration_MissingComponentsDefaultToZero(t *testing.T) {
	text := "3 months"
	match := engine.RawMatch{
		Kind:  ontology.Duration,
		Start: 0,
		End:   8,
		Text:  "3 months",
		Duration: &engine.RawDuration{
			Months: engine.Int64(3),
		},
	}

	entity, err := convertMatch(text, match)
	require.NoError(t, err)

	want := ontology.DurationValue{
		Months:    3,
		Precision: ontology.PrecisionExact,
	}
	assert.Equal(t, want, entity.Entity)
}

func TestConvertDuration_NegativeComponentRejected(t *testing.T) {
	match := engine.RawMatch{
		Kind:  ontology.Duration,
		Start: 0,
		End:   8,
		Text:  "3 months",
		Duration: &engine.RawDuration{
			Months: engine.Int64(-3),
		},
	}

	_, err := convertMatch("3 months", match)
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Reason, "negative duration component")
}

func TestConvertDuration_NilComponentsAndLargeValues(t *testing.T) {
	match := engine.RawMatch{
		Kind:  ontology.Duration,
		Start: 0,
		End:   13,
		Text:  "9000000 years",
		Duration: &engine.RawDuration{
			Years: engine.Int64(9000000),
		},
	}

	entity, err := convertMatch("9000000 years", match)
	require.NoError(t, err)
	assert.Equal(t, int64(9000000), entity.Entity.(ontology.DurationValue).Years)
}

func TestConvertTime_IntervalWithoutBoundsRejected(t *testing.T) {
	match := engine.RawMatch{
		Kind:  ontology.Time,
		Start: 0,
		End:   4,
		Text:  "soon",
	}

	_, err := convertMatch("soon", match)
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Reason, "neither bound")
}

func TestConvertTime_IntervalWithOneBound(t *testing.T) {
	match := engine.RawMatch{
		Kind:  ontology.Time,
		Start: 0,
		End:   12,
		Text:  "after dinner",
		From:  "2017-06-07 18:00:00 +02:00",
	}

	entity, err := convertMatch("after dinner", match)
	require.NoError(t, err)

	interval := entity.Entity.(ontology.TimeIntervalValue)
	require.NotNil(t, interval.From)
	assert.Equal(t, "2017-06-07 18:00:00 +02:00", *interval.From)
	assert.Nil(t, interval.To)
}

func TestConvertTime_InstantRequiresOffset(t *testing.T) {
	tests := []struct {
		name    string
		instant string
		grain   string
		wantErr bool
	}{
		{
			name:    "fully qualified",
			instant: "2017-06-13 18:00:00 +02:00",
			grain:   "Hour",
		},
		{
			name:    "missing offset",
			instant: "2017-06-13 18:00:00",
			grain:   "Hour",
			wantErr: true,
		},
		{
			name:    "date only",
			instant: "2017-06-13",
			grain:   "Day",
			wantErr: true,
		},
		{
			name:    "bad grain",
			instant: "2017-06-13 18:00:00 +02:00",
			grain:   "Fortnight",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := engine.RawMatch{
				Kind:    ontology.Time,
				Start:   0,
				End:     5,
				Text:    "later",
				Instant: tt.instant,
				Grain:   tt.grain,
			}
			_, err := convertMatch("later", match)
			if tt.wantErr {
				var convErr *ConversionError
				require.ErrorAs(t, err, &convErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConvertMoney_UnitAndPrecision(t *testing.T) {
	t.Run("no unit maps to nil", func(t *testing.T) {
		match := engine.RawMatch{
			Kind:   ontology.AmountOfMoney,
			Start:  0,
			End:    3,
			Text:   "ten",
			Number: engine.Float64(10),
		}
		entity, err := convertMatch("ten", match)
		require.NoError(t, err)

		money := entity.Entity.(ontology.AmountOfMoneyValue)
		assert.Nil(t, money.Unit)
		assert.Equal(t, ontology.PrecisionExact, money.Precision)
	})

	t.Run("approximate with unit", func(t *testing.T) {
		match := engine.RawMatch{
			Kind:        ontology.AmountOfMoney,
			Start:       0,
			End:         9,
			Text:        "around 5€",
			Number:      engine.Float64(5),
			Unit:        "€",
			Approximate: true,
		}
		entity, err := convertMatch("around 5€", match)
		require.NoError(t, err)

		money := entity.Entity.(ontology.AmountOfMoneyValue)
		require.NotNil(t, money.Unit)
		assert.Equal(t, "€", *money.Unit)
		assert.Equal(t, ontology.PrecisionApproximate, money.Precision)
	})
}

func TestConvertValue_MissingNumericField(t *testing.T) {
	kinds := []ontology.BuiltinEntityKind{
		ontology.Number,
		ontology.Percentage,
		ontology.AmountOfMoney,
		ontology.Temperature,
		ontology.Ordinal,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			match := engine.RawMatch{Kind: kind, Start: 0, End: 1, Text: "x"}
			_, err := convertMatch("x", match)

			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
		})
	}
}

func TestConvertMatch_UnknownKind(t *testing.T) {
	match := engine.RawMatch{
		Kind:   ontology.BuiltinEntityKind("Bogus"),
		Start:  0,
		End:    1,
		Text:   "x",
		Number: engine.Float64(1),
	}
	_, err := convertMatch("x", match)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Reason, "unknown entity kind")
}

func TestConvertMatch_SpanMismatchRejected(t *testing.T) {
	match := engine.RawMatch{
		Kind:   ontology.Number,
		Start:  0,
		End:    2,
		Text:   "42",
		Number: engine.Float64(42),
	}

	// Engine reported a span that does not carry the matched text.
	_, err := convertMatch("x7 oranges", match)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Reason, "invalid match")
}
