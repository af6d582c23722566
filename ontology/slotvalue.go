package ontology

import (
	"encoding/json"
	"fmt"
)

// SlotValue is the typed, normalized payload of a recognized entity,
// independent of the text that produced it. It is a closed union: the
// implementations in this package are the only ones.
//
// Serialized slot values carry a "kind" discriminator holding the variant
// name (e.g. "InstantTime", "Percentage"); the discriminator values are
// part of the stable wire contract.
type SlotValue interface {
	// Kind returns the entity kind this value belongs to.
	Kind() BuiltinEntityKind

	// variantName returns the wire discriminator of the variant.
	variantName() string
}

// NumberValue is a cardinal number.
type NumberValue struct {
	Value float64 `json:"value"`
}

func (NumberValue) Kind() BuiltinEntityKind { return Number }
func (NumberValue) variantName() string     { return "Number" }

// OrdinalValue is an ordinal number.
type OrdinalValue struct {
	Value int64 `json:"value"`
}

func (OrdinalValue) Kind() BuiltinEntityKind { return Ordinal }
func (OrdinalValue) variantName() string     { return "Ordinal" }

// PercentageValue is a percentage.
type PercentageValue struct {
	Value float64 `json:"value"`
}

func (PercentageValue) Kind() BuiltinEntityKind { return Percentage }
func (PercentageValue) variantName() string     { return "Percentage" }

// AmountOfMoneyValue is an amount of money. Unit is nil when the source
// text carried no recognizable currency unit.
type AmountOfMoneyValue struct {
	Value     float64   `json:"value"`
	Precision Precision `json:"precision"`
	Unit      *string   `json:"unit"`
}

func (AmountOfMoneyValue) Kind() BuiltinEntityKind { return AmountOfMoney }
func (AmountOfMoneyValue) variantName() string     { return "AmountOfMoney" }

// TemperatureValue is a temperature. Unit is nil when the source text
// carried no recognizable temperature unit.
type TemperatureValue struct {
	Value float64 `json:"value"`
	Unit  *string `json:"unit"`
}

func (TemperatureValue) Kind() BuiltinEntityKind { return Temperature }
func (TemperatureValue) variantName() string     { return "Temperature" }

// DurationValue is a duration broken down into calendar components.
// Components are not normalized against each other: "8 years and two
// days" keeps years=8, days=2.
type DurationValue struct {
	Years     int64     `json:"years"`
	Quarters  int64     `json:"quarters"`
	Months    int64     `json:"months"`
	Weeks     int64     `json:"weeks"`
	Days      int64     `json:"days"`
	Hours     int64     `json:"hours"`
	Minutes   int64     `json:"minutes"`
	Seconds   int64     `json:"seconds"`
	Precision Precision `json:"precision"`
}

func (DurationValue) Kind() BuiltinEntityKind { return Duration }
func (DurationValue) variantName() string     { return "Duration" }

// InstantTimeValue is a single point in time. Value is a fully qualified
// timestamp string including a UTC offset, e.g.
// "2017-06-13 18:00:00 +02:00".
type InstantTimeValue struct {
	Value     string    `json:"value"`
	Grain     Grain     `json:"grain"`
	Precision Precision `json:"precision"`
}

func (InstantTimeValue) Kind() BuiltinEntityKind { return Time }
func (InstantTimeValue) variantName() string     { return "InstantTime" }

// TimeIntervalValue is a time interval. At least one bound is always
// present.
type TimeIntervalValue struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

func (TimeIntervalValue) Kind() BuiltinEntityKind { return Time }
func (TimeIntervalValue) variantName() string     { return "TimeInterval" }

// MarshalJSON implementations inject the "kind" discriminator ahead of the
// variant fields, following the alias pattern so variant fields stay
// declared once.

func (v NumberValue) MarshalJSON() ([]byte, error) {
	type alias NumberValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

func (v OrdinalValue) MarshalJSON() ([]byte, error) {
	type alias OrdinalValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

func (v PercentageValue) MarshalJSON() ([]byte, error) {
	type alias PercentageValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

func (v AmountOfMoneyValue) MarshalJSON() ([]byte, error) {
	type alias AmountOfMoneyValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

func (v TemperatureValue) MarshalJSON() ([]byte, error) {
	type alias TemperatureValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

func (v DurationValue) MarshalJSON() ([]byte, error) {
	type alias DurationValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

func (v InstantTimeValue) MarshalJSON() ([]byte, error) {
	type alias InstantTimeValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

func (v TimeIntervalValue) MarshalJSON() ([]byte, error) {
	type alias TimeIntervalValue
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{v.variantName(), alias(v)})
}

// UnmarshalSlotValue decodes a serialized slot value by its "kind"
// discriminator.
func UnmarshalSlotValue(data []byte) (SlotValue, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding slot value discriminator: %w", err)
	}

	switch probe.Kind {
	case "Number":
		var v NumberValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding Number value: %w", err)
		}
		return v, nil
	case "Ordinal":
		var v OrdinalValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding Ordinal value: %w", err)
		}
		return v, nil
	case "Percentage":
		var v PercentageValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding Percentage value: %w", err)
		}
		return v, nil
	case "AmountOfMoney":
		var v AmountOfMoneyValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding AmountOfMoney value: %w", err)
		}
		return v, nil
	case "Temperature":
		var v TemperatureValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding Temperature value: %w", err)
		}
		return v, nil
	case "Duration":
		var v DurationValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding Duration value: %w", err)
		}
		return v, nil
	case "InstantTime":
		var v InstantTimeValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding InstantTime value: %w", err)
		}
		return v, nil
	case "TimeInterval":
		var v TimeIntervalValue
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding TimeInterval value: %w", err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown slot value kind: %q", probe.Kind)
}
