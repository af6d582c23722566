package rules

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/c360studio/nluentities/engine"
	"github.com/c360studio/nluentities/ontology"
)

// matchPercentages recognizes a quantity followed by "%" or a percent word.
func (e *Engine) matchPercentages(text string, numbers []numberMatch) []engine.RawMatch {
	if e.percentRe == nil {
		return nil
	}
	var matches []engine.RawMatch
	for _, n := range numbers {
		loc := e.percentRe.FindStringSubmatchIndex(text[n.end:])
		if loc == nil {
			continue
		}
		end := n.end + loc[1]
		token := text[n.end+loc[2] : n.end+loc[3]]
		if !tokenBoundaries(text, n.start, end, token) {
			continue
		}
		matches = append(matches, engine.RawMatch{
			Kind:   ontology.Percentage,
			Start:  n.start,
			End:    end,
			Text:   text[n.start:end],
			Number: engine.Float64(n.value),
		})
	}
	return matches
}

// matchTemperatures recognizes a quantity with a temperature unit suffix,
// an optional scale word after a bare degree unit, and an optional scale
// prefix ("섭씨 20도").
func (e *Engine) matchTemperatures(text string, numbers []numberMatch) []engine.RawMatch {
	if e.tempUnitRe == nil {
		return nil
	}
	var matches []engine.RawMatch
	for _, n := range numbers {
		loc := e.tempUnitRe.FindStringSubmatchIndex(text[n.end:])
		if loc == nil {
			continue
		}
		token := text[n.end+loc[2] : n.end+loc[3]]
		unit := e.data.TemperatureUnits[strings.ToLower(token)]
		end := n.end + loc[1]

		if unit == "degree" && e.tempScaleRe != nil {
			if scaleLoc := e.tempScaleRe.FindStringSubmatchIndex(text[end:]); scaleLoc != nil && scaleLoc[2] > 0 {
				scaleToken := text[end+scaleLoc[2] : end+scaleLoc[3]]
				if tokenBoundaries(text, n.start, end+scaleLoc[1], scaleToken) {
					unit = e.data.TemperatureScales[strings.ToLower(scaleToken)]
					end += scaleLoc[1]
				}
			}
		}

		start := n.start
		if e.tempPrefixRe != nil {
			if prefixLoc := e.tempPrefixRe.FindStringSubmatchIndex(text[:n.start]); prefixLoc != nil {
				prefixToken := text[prefixLoc[2]:prefixLoc[3]]
				if leftBoundary(text, prefixLoc[0]) {
					unit = e.data.TemperaturePrefixes[strings.ToLower(prefixToken)]
					start = prefixLoc[0]
				}
			}
		}

		if !tokenBoundaries(text, start, end, token) {
			continue
		}
		matches = append(matches, engine.RawMatch{
			Kind:   ontology.Temperature,
			Start:  start,
			End:    end,
			Text:   text[start:end],
			Number: engine.Float64(n.value),
			Unit:   unit,
		})
	}
	return matches
}

// matchMoney recognizes a quantity with a currency symbol or word suffix,
// optionally preceded by an approximation word.
func (e *Engine) matchMoney(text string, numbers []numberMatch) []engine.RawMatch {
	if e.moneyUnitRe == nil {
		return nil
	}
	var matches []engine.RawMatch
	for _, n := range numbers {
		loc := e.moneyUnitRe.FindStringSubmatchIndex(text[n.end:])
		if loc == nil {
			continue
		}
		token := text[n.end+loc[2] : n.end+loc[3]]
		end := n.end + loc[1]
		if !tokenBoundaries(text, n.start, end, token) {
			continue
		}

		start, approximate := e.approxPrefix(text, n.start)
		matches = append(matches, engine.RawMatch{
			Kind:        ontology.AmountOfMoney,
			Start:       start,
			End:         end,
			Text:        text[start:end],
			Number:      engine.Float64(n.value),
			Unit:        e.data.MoneyUnits[strings.ToLower(token)],
			Approximate: approximate,
		})
	}
	return matches
}

// matchOrdinals recognizes digit ordinals ("1st", "1er") and gazetteer
// ordinal words.
func (e *Engine) matchOrdinals(text string) []engine.RawMatch {
	var matches []engine.RawMatch

	if e.ordinalDigit != nil {
		for _, loc := range e.ordinalDigit.FindAllStringSubmatchIndex(text, -1) {
			if !hasBoundaries(text, loc[0], loc[1]) {
				continue
			}
			value, err := strconv.ParseInt(text[loc[2]:loc[3]], 10, 64)
			if err != nil {
				continue
			}
			matches = append(matches, engine.RawMatch{
				Kind:    ontology.Ordinal,
				Start:   loc[0],
				End:     loc[1],
				Text:    text[loc[0]:loc[1]],
				Ordinal: engine.Int64(value),
			})
		}
	}

	if e.ordinalWordRe != nil {
		for _, loc := range e.ordinalWordRe.FindAllStringIndex(text, -1) {
			if !hasBoundaries(text, loc[0], loc[1]) {
				continue
			}
			value, ok := e.data.OrdinalWords[strings.ToLower(text[loc[0]:loc[1]])]
			if !ok {
				continue
			}
			matches = append(matches, engine.RawMatch{
				Kind:    ontology.Ordinal,
				Start:   loc[0],
				End:     loc[1],
				Text:    text[loc[0]:loc[1]],
				Ordinal: engine.Int64(value),
			})
		}
	}

	return matches
}

// matchDurations recognizes gazetteer duration phrases and chains of
// quantity-plus-unit segments joined by connector words.
func (e *Engine) matchDurations(text string, numbers []numberMatch) []engine.RawMatch {
	var matches []engine.RawMatch

	if e.durPhraseRe != nil {
		for _, loc := range e.durPhraseRe.FindAllStringIndex(text, -1) {
			if !hasBoundaries(text, loc[0], loc[1]) {
				continue
			}
			components, ok := e.data.DurationPhrases[strings.ToLower(text[loc[0]:loc[1]])]
			if !ok {
				continue
			}
			duration := &engine.RawDuration{}
			for component, count := range components {
				setComponent(duration, component, count)
			}
			matches = append(matches, engine.RawMatch{
				Kind:     ontology.Duration,
				Start:    loc[0],
				End:      loc[1],
				Text:     text[loc[0]:loc[1]],
				Duration: duration,
			})
		}
	}

	if e.durationUnit == nil {
		return matches
	}

	ordered := make([]numberMatch, len(numbers))
	copy(ordered, numbers)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start < ordered[j].start })

	consumed := make([]bool, len(ordered))
	for i, n := range ordered {
		if consumed[i] {
			continue
		}
		duration := &engine.RawDuration{}
		end, ok := e.durationSegment(text, n, duration)
		if !ok {
			continue
		}

		// Chain further segments joined by connector words.
		for e.durationJoin != nil {
			joinLoc := e.durationJoin.FindStringIndex(text[end:])
			if joinLoc == nil {
				break
			}
			nextStart := end + joinLoc[1]
			extended := false
			for j := i + 1; j < len(ordered); j++ {
				if ordered[j].start != nextStart || consumed[j] {
					continue
				}
				if nextEnd, ok := e.durationSegment(text, ordered[j], duration); ok {
					end = nextEnd
					consumed[j] = true
					extended = true
				}
				break
			}
			if !extended {
				break
			}
		}

		start, approximate := e.approxPrefix(text, n.start)
		matches = append(matches, engine.RawMatch{
			Kind:        ontology.Duration,
			Start:       start,
			End:         end,
			Text:        text[start:end],
			Duration:    duration,
			Approximate: approximate,
		})
	}

	return matches
}

// durationSegment consumes one quantity-plus-unit segment, accumulating
// its component into duration. Returns the segment end.
func (e *Engine) durationSegment(text string, n numberMatch, duration *engine.RawDuration) (int, bool) {
	loc := e.durationUnit.FindStringSubmatchIndex(text[n.end:])
	if loc == nil {
		return 0, false
	}
	token := text[n.end+loc[2] : n.end+loc[3]]
	end := n.end + loc[1]
	if !tokenBoundaries(text, n.start, end, token) {
		return 0, false
	}
	setComponent(duration, e.data.DurationUnits[strings.ToLower(token)], int64(n.value))
	return end, true
}

// setComponent accumulates a count into the named duration component.
func setComponent(d *engine.RawDuration, component string, count int64) {
	add := func(field **int64) {
		if *field == nil {
			*field = engine.Int64(count)
			return
		}
		**field += count
	}
	switch component {
	case "years":
		add(&d.Years)
	case "quarters":
		add(&d.Quarters)
	case "months":
		add(&d.Months)
	case "weeks":
		add(&d.Weeks)
	case "days":
		add(&d.Days)
	case "hours":
		add(&d.Hours)
	case "minutes":
		add(&d.Minutes)
	case "seconds":
		add(&d.Seconds)
	}
}

// approxPrefix extends a span over an approximation word directly before
// it, reporting whether one was found.
func (e *Engine) approxPrefix(text string, start int) (int, bool) {
	if e.approxRe == nil {
		return start, false
	}
	loc := e.approxRe.FindStringIndex(text[:start])
	if loc == nil || !leftBoundary(text, loc[0]) {
		return start, false
	}
	return loc[0], true
}

// tokenBoundaries checks the left boundary of a span and, when the unit
// token ends in a letter or digit, the right boundary too. Symbol units
// like "%" or "$" bind to whatever follows.
func tokenBoundaries(text string, start, end int, token string) bool {
	if !leftBoundary(text, start) {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(token)
	if !isWordRune(last) {
		return true
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func leftBoundary(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(r)
}
