package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/nluentities/engine"
	"github.com/c360studio/nluentities/ontology"
)

// matchTimes recognizes calendar words ("today"), clock expressions
// ("16.30 Uhr") and, for English, natural relative expressions via the
// when library.
func (e *Engine) matchTimes(text string) ([]engine.RawMatch, error) {
	var matches []engine.RawMatch
	ref := e.now()

	if e.dayWordRe != nil {
		for _, loc := range e.dayWordRe.FindAllStringIndex(text, -1) {
			if !hasBoundaries(text, loc[0], loc[1]) {
				continue
			}
			spec, ok := e.data.DayWords[strings.ToLower(text[loc[0]:loc[1]])]
			if !ok {
				continue
			}
			day := ref.AddDate(0, 0, spec.Days)
			hour := 0
			if spec.Hour != nil {
				hour = *spec.Hour
			}
			instant := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, ref.Location())
			matches = append(matches, engine.RawMatch{
				Kind:    ontology.Time,
				Start:   loc[0],
				End:     loc[1],
				Text:    text[loc[0]:loc[1]],
				Instant: instant.Format(instantLayout),
				Grain:   spec.Grain,
			})
		}
	}

	for _, re := range e.clockRes {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			match, ok := e.clockMatch(re, text, loc, ref)
			if !ok {
				continue
			}
			matches = append(matches, match)
		}
	}

	if e.whenParser != nil {
		result, err := e.whenParser.Parse(text, ref)
		if err != nil {
			return nil, fmt.Errorf("when parser: %w", err)
		}
		if result != nil {
			matches = append(matches, engine.RawMatch{
				Kind:    ontology.Time,
				Start:   result.Index,
				End:     result.Index + len(result.Text),
				Text:    result.Text,
				Instant: result.Time.Format(instantLayout),
				Grain:   string(ontology.GrainMinute),
			})
		}
	}

	return matches, nil
}

// clockMatch converts one clock pattern match into an instant on the
// reference day.
func (e *Engine) clockMatch(re *regexp.Regexp, text string, loc []int, ref time.Time) (engine.RawMatch, bool) {
	group := func(name string) (string, bool) {
		idx := re.SubexpIndex(name)
		if idx < 0 || loc[2*idx] < 0 {
			return "", false
		}
		return text[loc[2*idx]:loc[2*idx+1]], true
	}

	hourText, ok := group("hour")
	if !ok {
		return engine.RawMatch{}, false
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour > 23 {
		return engine.RawMatch{}, false
	}

	minute := 0
	grain := ontology.GrainHour
	if minuteText, ok := group("minute"); ok {
		minute, err = strconv.Atoi(minuteText)
		if err != nil || minute > 59 {
			return engine.RawMatch{}, false
		}
		grain = ontology.GrainMinute
	}

	if ampm, ok := group("ampm"); ok {
		switch strings.ToLower(ampm) {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
	}

	instant := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
	return engine.RawMatch{
		Kind:    ontology.Time,
		Start:   loc[0],
		End:     loc[1],
		Text:    text[loc[0]:loc[1]],
		Instant: instant.Format(instantLayout),
		Grain:   string(grain),
	}, true
}
