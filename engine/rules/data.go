package rules

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/ontology"
)

//go:embed data/*.yaml
var dataFS embed.FS

// dayWordSpec describes a calendar word like "today" or "tonight".
type dayWordSpec struct {
	// Days is the day offset from the reference date.
	Days int `yaml:"days"`

	// Hour pins the instant to a specific hour when set; nil means
	// midnight of the target day.
	Hour *int `yaml:"hour"`

	// Grain is the grain name of the produced instant.
	Grain string `yaml:"grain"`
}

// ruleData is the per-language rule table loaded from the embedded YAML
// files. All token keys are stored lowercase.
type ruleData struct {
	// NumberWords maps words and whole phrases directly to values.
	// Phrase entries win over compositional evaluation.
	NumberWords map[string]float64 `yaml:"number_words"`

	// Multipliers maps scale words (hundred, tausend, 천) to their factor.
	Multipliers map[string]float64 `yaml:"multipliers"`

	// Connectors are glue words inside number phrases ("and", "und").
	Connectors []string `yaml:"connectors"`

	// OrdinalWords maps ordinal words and phrases to their value.
	OrdinalWords map[string]int64 `yaml:"ordinal_words"`

	// OrdinalSuffixes are suffixes attaching to digits ("st", "er").
	OrdinalSuffixes []string `yaml:"ordinal_suffixes"`

	// PercentWords follow a number to make it a percentage.
	PercentWords []string `yaml:"percent_words"`

	// ApproxWords precede a match to mark it approximate.
	ApproxWords []string `yaml:"approx_words"`

	// DurationUnits maps unit tokens to duration component names
	// (years, quarters, months, weeks, days, hours, minutes, seconds).
	DurationUnits map[string]string `yaml:"duration_units"`

	// DurationPhrases maps whole phrases to component counts
	// ("half an hour" -> minutes: 30).
	DurationPhrases map[string]map[string]int64 `yaml:"duration_phrases"`

	// DurationConnectors join chained duration segments
	// ("8 years and two days").
	DurationConnectors []string `yaml:"duration_connectors"`

	// MoneyUnits maps currency symbols and words to canonical units.
	MoneyUnits map[string]string `yaml:"money_units"`

	// TemperatureUnits maps unit tokens following a number to canonical
	// units (celsius, fahrenheit, kelvin, degree).
	TemperatureUnits map[string]string `yaml:"temperature_units"`

	// TemperatureScales refine a bare degree unit when they follow it
	// ("twenty degrees fahrenheit").
	TemperatureScales map[string]string `yaml:"temperature_scales"`

	// TemperaturePrefixes precede the number ("섭씨 20도").
	TemperaturePrefixes map[string]string `yaml:"temperature_prefixes"`

	// DayWords are calendar words producing instants.
	DayWords map[string]dayWordSpec `yaml:"day_words"`

	// ClockPatterns are regexes with named groups hour, minute and
	// optional ampm, producing instants on the reference day.
	ClockPatterns []string `yaml:"clock_patterns"`

	// UseWhen enables the olebedev/when recognizer (English only).
	UseWhen bool `yaml:"use_when"`
}

// durationComponents is the set of valid duration component names.
var durationComponents = map[string]bool{
	"years":    true,
	"quarters": true,
	"months":   true,
	"weeks":    true,
	"days":     true,
	"hours":    true,
	"minutes":  true,
	"seconds":  true,
}

// loadRuleData reads and validates the rule table for a language.
func loadRuleData(lang language.Language) (*ruleData, error) {
	raw, err := dataFS.ReadFile("data/" + lang.String() + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("reading rule data for %s: %w", lang, err)
	}

	var data ruleData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing rule data for %s: %w", lang, err)
	}

	for unit, component := range data.DurationUnits {
		if !durationComponents[component] {
			return nil, fmt.Errorf("rule data for %s: duration unit %q maps to unknown component %q",
				lang, unit, component)
		}
	}
	for phrase, components := range data.DurationPhrases {
		for component := range components {
			if !durationComponents[component] {
				return nil, fmt.Errorf("rule data for %s: duration phrase %q uses unknown component %q",
					lang, phrase, component)
			}
		}
	}
	for word, spec := range data.DayWords {
		if _, err := ontology.ParseGrain(spec.Grain); err != nil {
			return nil, fmt.Errorf("rule data for %s: day word %q: %w", lang, word, err)
		}
	}

	return &data, nil
}
