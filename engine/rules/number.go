package rules

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/c360studio/nluentities/engine"
	"github.com/c360studio/nluentities/ontology"
)

// numberMatch is a numeric quantity located in the text. Quantities feed
// the number, percentage, temperature, money and duration recognizers.
type numberMatch struct {
	start, end int
	value      float64

	// clean is true when the match sits on word boundaries on both
	// sides. Attached forms like "2stdn" stay available for unit
	// recognizers but are not emitted as standalone numbers.
	clean bool
}

// scanNumbers finds digit literals and gazetteer number phrases.
func (e *Engine) scanNumbers(text string) []numberMatch {
	var matches []numberMatch

	for _, loc := range e.digitRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		value, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
		if err != nil {
			continue
		}
		matches = append(matches, numberMatch{
			start: loc[0],
			end:   loc[1],
			value: value,
			clean: hasBoundaries(text, loc[0], loc[1]),
		})
	}

	if e.numberWordRe != nil {
		for _, loc := range e.numberWordRe.FindAllStringIndex(text, -1) {
			start, end := trimConnectors(text, loc[0], loc[1], e.data.Connectors)
			if start >= end || !hasBoundaries(text, start, end) {
				continue
			}
			value, ok := e.evalNumberPhrase(text[start:end])
			if !ok {
				continue
			}
			matches = append(matches, numberMatch{
				start: start,
				end:   end,
				value: value,
				clean: true,
			})
		}
	}

	return matches
}

// matchNumbers emits Number raw matches for clean quantities.
func (e *Engine) matchNumbers(text string, numbers []numberMatch) []engine.RawMatch {
	var matches []engine.RawMatch
	for _, n := range numbers {
		if !n.clean {
			continue
		}
		matches = append(matches, engine.RawMatch{
			Kind:   ontology.Number,
			Start:  n.start,
			End:    n.end,
			Text:   text[n.start:n.end],
			Number: engine.Float64(n.value),
		})
	}
	return matches
}

// evalNumberPhrase resolves a number phrase to its value. Whole-phrase
// gazetteer entries win over compositional evaluation, which handles
// regular forms like "two thousand and three".
func (e *Engine) evalNumberPhrase(phrase string) (float64, bool) {
	lowered := strings.ToLower(phrase)
	if value, ok := e.data.NumberWords[lowered]; ok {
		return value, true
	}

	var total, current float64
	seen := false
	for _, token := range strings.Fields(lowered) {
		if isConnector(token, e.data.Connectors) {
			continue
		}
		if value, ok := e.data.NumberWords[token]; ok {
			current += value
			seen = true
			continue
		}
		multiplier, ok := e.data.Multipliers[token]
		if !ok {
			return 0, false
		}
		seen = true
		if multiplier >= 1000 {
			if current == 0 {
				current = 1
			}
			total += current * multiplier
			current = 0
		} else {
			if current == 0 {
				current = 1
			}
			current *= multiplier
		}
	}
	if !seen {
		return 0, false
	}
	return total + current, true
}

// trimConnectors shrinks a phrase span so it neither starts nor ends with
// a bare connector word.
func trimConnectors(text string, start, end int, connectors []string) (int, int) {
	for {
		trimmed := strings.TrimRight(text[start:end], " ")
		fields := strings.Fields(trimmed)
		if len(fields) == 0 || !isConnector(fields[len(fields)-1], connectors) {
			end = start + len(trimmed)
			break
		}
		end = start + len(trimmed) - len(fields[len(fields)-1])
	}
	for {
		trimmed := strings.TrimLeft(text[start:end], " ")
		fields := strings.Fields(trimmed)
		offset := end - start - len(trimmed)
		if len(fields) == 0 || !isConnector(fields[0], connectors) {
			start += offset
			break
		}
		start += offset + len(fields[0])
	}
	return start, end
}

func isConnector(token string, connectors []string) bool {
	lowered := strings.ToLower(token)
	for _, c := range connectors {
		if lowered == c {
			return true
		}
	}
	return false
}

// hasBoundaries reports whether [start, end) sits on word boundaries:
// neither adjacent rune is a letter or digit.
func hasBoundaries(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
