package parser

import (
	"time"

	"github.com/c360studio/nluentities/engine"
	"github.com/c360studio/nluentities/ontology"
)

// instantLayout is the required format for instant timestamps: fully
// qualified, with a UTC offset.
const instantLayout = "2006-01-02 15:04:05 -07:00"

// convertMatch normalizes one raw engine match into a builtin entity.
// Engines are not trusted: every kind-specific field is validated and a
// typed ConversionError is returned for malformed output, never a panic.
func convertMatch(text string, m engine.RawMatch) (ontology.BuiltinEntity, error) {
	value, err := convertValue(m)
	if err != nil {
		return ontology.BuiltinEntity{}, err
	}

	// Defensive check against engine bugs: the produced variant must
	// belong to the kind the engine declared.
	if value.Kind() != m.Kind {
		return ontology.BuiltinEntity{}, NewConversionError(
			"slot value kind %s does not match declared kind %s", value.Kind(), m.Kind)
	}

	entity := ontology.BuiltinEntity{
		Value:      m.Text,
		Range:      ontology.Range{Start: m.Start, End: m.End},
		Entity:     value,
		EntityKind: m.Kind,
	}
	if err := entity.Validate(text); err != nil {
		return ontology.BuiltinEntity{}, NewConversionError("invalid match: %s", err.Error())
	}
	return entity, nil
}

// convertValue builds the slot value for the declared kind.
func convertValue(m engine.RawMatch) (ontology.SlotValue, error) {
	switch m.Kind {
	case ontology.Number:
		if m.Number == nil {
			return nil, NewConversionError("number match without a numeric value")
		}
		return ontology.NumberValue{Value: *m.Number}, nil

	case ontology.Ordinal:
		if m.Ordinal == nil {
			return nil, NewConversionError("ordinal match without an ordinal value")
		}
		return ontology.OrdinalValue{Value: *m.Ordinal}, nil

	case ontology.Percentage:
		if m.Number == nil {
			return nil, NewConversionError("percentage match without a numeric value")
		}
		return ontology.PercentageValue{Value: *m.Number}, nil

	case ontology.AmountOfMoney:
		if m.Number == nil {
			return nil, NewConversionError("amount of money match without a numeric value")
		}
		return ontology.AmountOfMoneyValue{
			Value:     *m.Number,
			Precision: precisionOf(m),
			Unit:      optionalUnit(m.Unit),
		}, nil

	case ontology.Temperature:
		if m.Number == nil {
			return nil, NewConversionError("temperature match without a numeric value")
		}
		return ontology.TemperatureValue{
			Value: *m.Number,
			Unit:  optionalUnit(m.Unit),
		}, nil

	case ontology.Duration:
		return convertDuration(m)

	case ontology.Time:
		return convertTime(m)
	}
	return nil, NewConversionError("unknown entity kind: %q", string(m.Kind))
}

// convertDuration normalizes duration components: missing components
// default to zero, negative components are rejected, large values pass
// through unchecked.
func convertDuration(m engine.RawMatch) (ontology.SlotValue, error) {
	raw := m.Duration
	if raw == nil {
		raw = &engine.RawDuration{}
	}

	component := func(name string, v *int64) (int64, error) {
		if v == nil {
			return 0, nil
		}
		if *v < 0 {
			return 0, NewConversionError("negative duration component %s: %d", name, *v)
		}
		return *v, nil
	}

	var (
		value ontology.DurationValue
		err   error
	)
	if value.Years, err = component("years", raw.Years); err != nil {
		return nil, err
	}
	if value.Quarters, err = component("quarters", raw.Quarters); err != nil {
		return nil, err
	}
	if value.Months, err = component("months", raw.Months); err != nil {
		return nil, err
	}
	if value.Weeks, err = component("weeks", raw.Weeks); err != nil {
		return nil, err
	}
	if value.Days, err = component("days", raw.Days); err != nil {
		return nil, err
	}
	if value.Hours, err = component("hours", raw.Hours); err != nil {
		return nil, err
	}
	if value.Minutes, err = component("minutes", raw.Minutes); err != nil {
		return nil, err
	}
	if value.Seconds, err = component("seconds", raw.Seconds); err != nil {
		return nil, err
	}
	value.Precision = precisionOf(m)
	return value, nil
}

// convertTime produces an instant when the engine supplied one, and an
// interval otherwise. An interval needs at least one bound.
func convertTime(m engine.RawMatch) (ontology.SlotValue, error) {
	if m.Instant != "" {
		if _, err := time.Parse(instantLayout, m.Instant); err != nil {
			return nil, NewConversionError("instant %q is not a fully qualified timestamp with offset: %s",
				m.Instant, err.Error())
		}
		grain, err := ontology.ParseGrain(m.Grain)
		if err != nil {
			return nil, NewConversionError("instant match: %s", err.Error())
		}
		return ontology.InstantTimeValue{
			Value:     m.Instant,
			Grain:     grain,
			Precision: precisionOf(m),
		}, nil
	}

	if m.From == "" && m.To == "" {
		return nil, NewConversionError("time interval with neither bound")
	}
	var value ontology.TimeIntervalValue
	if m.From != "" {
		if _, err := time.Parse(instantLayout, m.From); err != nil {
			return nil, NewConversionError("interval bound %q is not a fully qualified timestamp with offset: %s",
				m.From, err.Error())
		}
		from := m.From
		value.From = &from
	}
	if m.To != "" {
		if _, err := time.Parse(instantLayout, m.To); err != nil {
			return nil, NewConversionError("interval bound %q is not a fully qualified timestamp with offset: %s",
				m.To, err.Error())
		}
		to := m.To
		value.To = &to
	}
	return value, nil
}

// precisionOf maps the raw approximation flag; absence means exact.
func precisionOf(m engine.RawMatch) ontology.Precision {
	if m.Approximate {
		return ontology.PrecisionApproximate
	}
	return ontology.PrecisionExact
}

// optionalUnit turns an empty unit string into an absent unit.
func optionalUnit(unit string) *string {
	if unit == "" {
		return nil
	}
	u := unit
	return &u
}
