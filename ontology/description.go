package ontology

import "encoding/json"

// ResultDescription returns a pretty-printed illustrative output payload
// for the kind, used in documentation and CLI help. The payload is a list
// of representative slot values; Time shows both an instant and an
// interval.
func (k BuiltinEntityKind) ResultDescription() (string, error) {
	var values []SlotValue
	switch k {
	case AmountOfMoney:
		values = []SlotValue{
			AmountOfMoneyValue{
				Value:     10.05,
				Precision: PrecisionApproximate,
				Unit:      strPtr("€"),
			},
		}
	case Duration:
		values = []SlotValue{
			DurationValue{
				Months:    3,
				Precision: PrecisionExact,
			},
		}
	case Number:
		values = []SlotValue{
			NumberValue{Value: 42},
		}
	case Ordinal:
		values = []SlotValue{
			OrdinalValue{Value: 2},
		}
	case Temperature:
		values = []SlotValue{
			TemperatureValue{Value: 23, Unit: strPtr("celsius")},
			TemperatureValue{Value: 60, Unit: strPtr("fahrenheit")},
		}
	case Time:
		values = []SlotValue{
			InstantTimeValue{
				Value:     "2017-06-13 18:00:00 +02:00",
				Grain:     GrainHour,
				Precision: PrecisionExact,
			},
			TimeIntervalValue{
				From: strPtr("2017-06-07 18:00:00 +02:00"),
				To:   strPtr("2017-06-08 00:00:00 +02:00"),
			},
		}
	case Percentage:
		values = []SlotValue{
			PercentageValue{Value: 20},
		}
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return "", NewEncodingError(err)
	}
	return string(data), nil
}

func strPtr(s string) *string {
	return &s
}
