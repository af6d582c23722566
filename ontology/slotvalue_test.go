package ontology

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotValue_MarshalDiscriminator(t *testing.T) {
	tests := []struct {
		name  string
		value SlotValue
		want  string
	}{
		{
			name:  "number",
			value: NumberValue{Value: 42},
			want:  `{"kind":"Number","value":42}`,
		},
		{
			name:  "ordinal",
			value: OrdinalValue{Value: 2},
			want:  `{"kind":"Ordinal","value":2}`,
		},
		{
			name:  "percentage",
			value: PercentageValue{Value: 20},
			want:  `{"kind":"Percentage","value":20}`,
		},
		{
			name: "amount of money without unit",
			value: AmountOfMoneyValue{
				Value:     10.05,
				Precision: PrecisionApproximate,
			},
			want: `{"kind":"AmountOfMoney","value":10.05,"precision":"Approximate","unit":null}`,
		},
		{
			name: "temperature",
			value: TemperatureValue{
				Value: 23,
				Unit:  strPtr("celsius"),
			},
			want: `{"kind":"Temperature","value":23,"unit":"celsius"}`,
		},
		{
			name: "duration",
			value: DurationValue{
				Months:    3,
				Precision: PrecisionExact,
			},
			want: `{"kind":"Duration","years":0,"quarters":0,"months":3,"weeks":0,"days":0,"hours":0,"minutes":0,"seconds":0,"precision":"Exact"}`,
		},
		{
			name: "instant time",
			value: InstantTimeValue{
				Value:     "2017-06-13 18:00:00 +02:00",
				Grain:     GrainHour,
				Precision: PrecisionExact,
			},
			want: `{"kind":"InstantTime","value":"2017-06-13 18:00:00 +02:00","grain":"Hour","precision":"Exact"}`,
		},
		{
			name: "time interval with open end",
			value: TimeIntervalValue{
				From: strPtr("2017-06-07 18:00:00 +02:00"),
			},
			want: `{"kind":"TimeInterval","from":"2017-06-07 18:00:00 +02:00","to":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			decoded, err := UnmarshalSlotValue(data)
			require.NoError(t, err)
			assert.Equal(t, tt.value, decoded)
		})
	}
}

func TestUnmarshalSlotValue_UnknownKind(t *testing.T) {
	_, err := UnmarshalSlotValue([]byte(`{"kind":"Bogus","value":1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown slot value kind")
}

func TestUnmarshalSlotValue_NotAnObject(t *testing.T) {
	_, err := UnmarshalSlotValue([]byte(`[1,2,3]`))
	require.Error(t, err)
}

func TestSlotValue_KindMapping(t *testing.T) {
	tests := []struct {
		value SlotValue
		kind  BuiltinEntityKind
	}{
		{NumberValue{}, Number},
		{OrdinalValue{}, Ordinal},
		{PercentageValue{}, Percentage},
		{AmountOfMoneyValue{}, AmountOfMoney},
		{TemperatureValue{}, Temperature},
		{DurationValue{}, Duration},
		{InstantTimeValue{}, Time},
		{TimeIntervalValue{}, Time},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.value.Kind())
	}
}

func TestParseGrain(t *testing.T) {
	for _, g := range Grains {
		t.Run(string(g), func(t *testing.T) {
			got, err := ParseGrain(string(g))
			require.NoError(t, err)
			assert.Equal(t, g, got)
		})
	}

	_, err := ParseGrain("Fortnight")
	require.Error(t, err)
	_, err = ParseGrain("")
	require.Error(t, err)
}
