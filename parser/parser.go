// Package parser provides the extraction facade: per-language dispatch to
// a parsing engine, conversion of raw matches into the value model, and
// ordering of the resulting builtin entities.
package parser

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/c360studio/nluentities/engine"
	"github.com/c360studio/nluentities/engine/rules"
	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/ontology"
)

// Parser extracts builtin entities from text. Engines are built lazily,
// once per language, and shared read-only between concurrent Extract
// calls; construction failures are cached and never retried.
type Parser struct {
	provider engine.Provider
	logger   *slog.Logger

	mu      sync.Mutex
	engines map[language.Language]*engineEntry
}

// engineEntry is the write-once cell for one language's engine: the once
// guard guarantees at most one build even under concurrent first use.
type engineEntry struct {
	once   sync.Once
	engine engine.Engine
	err    error
}

// Option configures a Parser.
type Option func(*Parser)

// WithProvider replaces the bundled rule engine with a custom engine
// provider.
func WithProvider(provider engine.Provider) Option {
	return func(p *Parser) {
		p.provider = provider
	}
}

// WithLogger sets the logger used for per-match diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a parser backed by the bundled rule engine unless a custom
// provider is configured.
func New(opts ...Option) *Parser {
	p := &Parser{
		provider: rules.Provider,
		logger:   slog.Default(),
		engines:  make(map[language.Language]*engineEntry),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract recognizes builtin entities in text.
//
// When kinds is nil, every kind supported by the language is attempted.
// Requested kinds the language does not support are silently skipped: the
// contract is best effort over the intersection of requested and
// supported kinds. Matches that fail conversion are dropped and logged,
// not propagated; the call fails only for an unsupported language or an
// engine failure.
//
// Results are ordered by ascending range start; ties are broken by
// descending range end so the longest match at a position comes first.
func (p *Parser) Extract(text string, lang language.Language, kinds []ontology.BuiltinEntityKind) ([]ontology.BuiltinEntity, error) {
	if !lang.IsValid() {
		return nil, &UnsupportedLanguageError{Language: lang}
	}

	attempted := supportedKinds(lang, kinds)
	if len(attempted) == 0 {
		return []ontology.BuiltinEntity{}, nil
	}

	eng, err := p.engineFor(lang)
	if err != nil {
		return nil, err
	}

	extractionsTotal.WithLabelValues(lang.String()).Inc()

	matches, err := eng.Matches(text, attempted)
	if err != nil {
		return nil, NewEngineError(lang, err)
	}

	entities := make([]ontology.BuiltinEntity, 0, len(matches))
	for _, match := range matches {
		entity, err := convertMatch(text, match)
		if err != nil {
			// Partial-failure semantics: one bad match does not void
			// the rest.
			droppedMatchesTotal.WithLabelValues(string(match.Kind)).Inc()
			p.logger.Warn("dropping unconvertible match",
				slog.String("language", lang.String()),
				slog.String("kind", string(match.Kind)),
				slog.String("text", match.Text),
				slog.String("error", err.Error()))
			continue
		}
		entitiesTotal.WithLabelValues(entity.EntityKind.String()).Inc()
		entities = append(entities, entity)
	}

	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].Range.Start != entities[j].Range.Start {
			return entities[i].Range.Start < entities[j].Range.Start
		}
		return entities[i].Range.End > entities[j].Range.End
	})
	return entities, nil
}

// engineFor returns the cached engine for a language, building it on
// first use.
func (p *Parser) engineFor(lang language.Language) (engine.Engine, error) {
	p.mu.Lock()
	entry, ok := p.engines[lang]
	if !ok {
		entry = &engineEntry{}
		p.engines[lang] = entry
	}
	p.mu.Unlock()

	entry.once.Do(func() {
		entry.engine, entry.err = p.provider(lang)
		if entry.err != nil {
			entry.err = NewEngineError(lang, entry.err)
		}
	})
	return entry.engine, entry.err
}

// supportedKinds intersects the requested kinds with the kinds supported
// by the language. A nil request means all supported kinds, in registry
// order.
func supportedKinds(lang language.Language, requested []ontology.BuiltinEntityKind) []ontology.BuiltinEntityKind {
	if requested == nil {
		return ontology.SupportedKinds(lang)
	}
	var kinds []ontology.BuiltinEntityKind
	seen := map[ontology.BuiltinEntityKind]bool{}
	for _, k := range requested {
		if k.Supports(lang) && !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Default parser instance and initialization guard.
var (
	defaultParser     *Parser
	defaultParserOnce sync.Once
)

// Default returns the shared parser backed by the bundled rule engine.
func Default() *Parser {
	defaultParserOnce.Do(func() {
		defaultParser = New()
	})
	return defaultParser
}

// Extract runs an extraction on the shared default parser.
func Extract(text string, lang language.Language, kinds []ontology.BuiltinEntityKind) ([]ontology.BuiltinEntity, error) {
	return Default().Extract(text, lang, kinds)
}
