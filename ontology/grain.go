package ontology

import "fmt"

// Grain is the granularity of a time value.
type Grain string

const (
	// GrainYear is year granularity.
	GrainYear Grain = "Year"

	// GrainQuarter is quarter granularity.
	GrainQuarter Grain = "Quarter"

	// GrainMonth is month granularity.
	GrainMonth Grain = "Month"

	// GrainWeek is week granularity.
	GrainWeek Grain = "Week"

	// GrainDay is day granularity.
	GrainDay Grain = "Day"

	// GrainHour is hour granularity.
	GrainHour Grain = "Hour"

	// GrainMinute is minute granularity.
	GrainMinute Grain = "Minute"

	// GrainSecond is second granularity.
	GrainSecond Grain = "Second"
)

// Grains lists every grain from coarsest to finest.
var Grains = []Grain{
	GrainYear,
	GrainQuarter,
	GrainMonth,
	GrainWeek,
	GrainDay,
	GrainHour,
	GrainMinute,
	GrainSecond,
}

// IsValid checks whether g is a known grain.
func (g Grain) IsValid() bool {
	switch g {
	case GrainYear, GrainQuarter, GrainMonth, GrainWeek,
		GrainDay, GrainHour, GrainMinute, GrainSecond:
		return true
	}
	return false
}

// ParseGrain resolves a grain name to a Grain.
func ParseGrain(s string) (Grain, error) {
	g := Grain(s)
	if !g.IsValid() {
		return "", fmt.Errorf("unknown grain: %q", s)
	}
	return g, nil
}
