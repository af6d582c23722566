// Package rules implements the bundled lightweight rule engine: a
// pattern-and-gazetteer recognizer for builtin entities, configured per
// language from embedded YAML rule tables.
//
// The engine trades linguistic coverage for predictability: it recognizes
// digit forms, curated word forms and simple time expressions. It is one
// implementation of the engine.Engine contract, not the contract itself;
// callers needing a full grammar engine can plug their own provider into
// the parser facade.
package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	whenen "github.com/olebedev/when/rules/en"

	"github.com/c360studio/nluentities/engine"
	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/ontology"
)

// instantLayout is the wire format for instant timestamps.
const instantLayout = "2006-01-02 15:04:05 -07:00"

// Engine is a rule-based recognizer for one language. Construction
// compiles all rule tables into regexes; a constructed engine is
// immutable and safe for concurrent use.
type Engine struct {
	lang language.Language
	data *ruleData
	now  func() time.Time

	digitRe       *regexp.Regexp
	numberWordRe  *regexp.Regexp
	percentRe     *regexp.Regexp
	tempUnitRe    *regexp.Regexp
	tempScaleRe   *regexp.Regexp
	tempPrefixRe  *regexp.Regexp
	moneyUnitRe   *regexp.Regexp
	approxRe      *regexp.Regexp
	ordinalDigit  *regexp.Regexp
	ordinalWordRe *regexp.Regexp
	durationUnit  *regexp.Regexp
	durationJoin  *regexp.Regexp
	durPhraseRe   *regexp.Regexp
	dayWordRe     *regexp.Regexp
	clockRes      []*regexp.Regexp

	whenParser *when.Parser
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the reference clock used for relative time
// expressions. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New builds the rule engine for a language.
func New(lang language.Language, opts ...Option) (*Engine, error) {
	if !lang.IsValid() {
		return nil, fmt.Errorf("no rule data for language: %q", lang)
	}

	data, err := loadRuleData(lang)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		lang: lang,
		data: data,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.compile(); err != nil {
		return nil, fmt.Errorf("compiling rules for %s: %w", lang, err)
	}

	if data.UseWhen {
		w := when.New(nil)
		w.Add(whenen.All...)
		w.Add(common.All...)
		e.whenParser = w
	}

	return e, nil
}

// Provider adapts New to the engine.Provider contract.
func Provider(lang language.Language) (engine.Engine, error) {
	return New(lang)
}

// Matches implements engine.Engine.
func (e *Engine) Matches(text string, kinds []ontology.BuiltinEntityKind) ([]engine.RawMatch, error) {
	numbers := e.scanNumbers(text)

	var matches []engine.RawMatch
	for _, kind := range kinds {
		switch kind {
		case ontology.Number:
			matches = append(matches, e.matchNumbers(text, numbers)...)
		case ontology.Ordinal:
			matches = append(matches, e.matchOrdinals(text)...)
		case ontology.Percentage:
			matches = append(matches, e.matchPercentages(text, numbers)...)
		case ontology.Temperature:
			matches = append(matches, e.matchTemperatures(text, numbers)...)
		case ontology.AmountOfMoney:
			matches = append(matches, e.matchMoney(text, numbers)...)
		case ontology.Duration:
			matches = append(matches, e.matchDurations(text, numbers)...)
		case ontology.Time:
			timeMatches, err := e.matchTimes(text)
			if err != nil {
				return nil, err
			}
			matches = append(matches, timeMatches...)
		}
	}
	return matches, nil
}

// compile builds all matcher regexes from the rule tables.
func (e *Engine) compile() error {
	var err error

	e.digitRe = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)?`)

	if e.numberWordRe, err = phraseRegexp(tokenUnion(
		keysOfFloat(e.data.NumberWords),
		keysOfFloat(e.data.Multipliers),
		e.data.Connectors,
	)); err != nil {
		return err
	}
	if e.percentRe, err = suffixRegexp(append([]string{"%"}, e.data.PercentWords...)); err != nil {
		return err
	}
	if e.tempUnitRe, err = suffixRegexp(keysOfString(e.data.TemperatureUnits)); err != nil {
		return err
	}
	if e.tempScaleRe, err = suffixRegexp(keysOfString(e.data.TemperatureScales)); err != nil {
		return err
	}
	if e.tempPrefixRe, err = prefixRegexp(keysOfString(e.data.TemperaturePrefixes)); err != nil {
		return err
	}
	if e.moneyUnitRe, err = suffixRegexp(keysOfString(e.data.MoneyUnits)); err != nil {
		return err
	}
	if e.approxRe, err = prefixRegexp(e.data.ApproxWords); err != nil {
		return err
	}
	if len(e.data.OrdinalSuffixes) > 0 {
		pattern := `(?i)([0-9]+)\s?(?:` + alternation(e.data.OrdinalSuffixes) + `)`
		if e.ordinalDigit, err = regexp.Compile(pattern); err != nil {
			return err
		}
	}
	if e.ordinalWordRe, err = phraseRegexp(keysOfInt(e.data.OrdinalWords)); err != nil {
		return err
	}
	if e.durationUnit, err = suffixRegexp(keysOfString(e.data.DurationUnits)); err != nil {
		return err
	}
	if e.durationJoin, err = joinRegexp(e.data.DurationConnectors); err != nil {
		return err
	}
	if e.durPhraseRe, err = phraseRegexp(keysOfDuration(e.data.DurationPhrases)); err != nil {
		return err
	}
	if e.dayWordRe, err = phraseRegexp(keysOfDay(e.data.DayWords)); err != nil {
		return err
	}

	for _, pattern := range e.data.ClockPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("clock pattern %q: %w", pattern, err)
		}
		e.clockRes = append(e.clockRes, re)
	}
	return nil
}

// alternation joins tokens into a regex alternation, longest first so the
// scanner prefers the most specific phrase.
func alternation(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, tok := range sorted {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return strings.Join(quoted, "|")
}

// phraseRegexp matches one or more gazetteer tokens separated by spaces.
// Returns nil when the gazetteer is empty.
func phraseRegexp(tokens []string) (*regexp.Regexp, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	alt := alternation(tokens)
	return regexp.Compile(`(?i)(?:` + alt + `)(?:\s+(?:` + alt + `))*`)
}

// suffixRegexp matches a unit token at the start of a string, optionally
// preceded by a single space. Returns nil when no tokens exist.
func suffixRegexp(tokens []string) (*regexp.Regexp, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	return regexp.Compile(`^(?i:[ ]?(` + alternation(tokens) + `))`)
}

// joinRegexp matches a space-delimited connector at the start of a string.
// Returns nil when no tokens exist.
func joinRegexp(tokens []string) (*regexp.Regexp, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	return regexp.Compile(`^(?i:[ ](?:` + alternation(tokens) + `)[ ])`)
}

// prefixRegexp matches a token at the end of a string, optionally followed
// by a single space. Returns nil when no tokens exist.
func prefixRegexp(tokens []string) (*regexp.Regexp, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	return regexp.Compile(`(?i:(` + alternation(tokens) + `)[ ]?)$`)
}

func keysOfFloat(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func keysOfInt(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func keysOfString(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func keysOfDuration(m map[string]map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func keysOfDay(m map[string]dayWordSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func tokenUnion(lists ...[]string) []string {
	var union []string
	seen := map[string]bool{}
	for _, list := range lists {
		for _, tok := range list {
			if !seen[tok] {
				seen[tok] = true
				union = append(union, tok)
			}
		}
	}
	return union
}
