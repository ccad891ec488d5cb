package parse

import (
	"log/slog"
	"strings"

	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/lexicon"
)

// emptyQueryConfidence is the fixed confidence of the degenerate empty
// query. It is a constant of the contract, not a scorer output.
const emptyQueryConfidence = 0.5

// Parser extracts structured search facets from free text using the
// lexicon's rule tables.
type Parser struct {
	lex     *lexicon.Lexicon
	logger  *slog.Logger
	monitor Monitor
}

// Option configures a Parser.
type Option func(*Parser) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor receiving per-stage callbacks.
// Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(p *Parser) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		p.monitor = monitor
		return nil
	}
}

// NewParser creates a parser over the given lexicon.
func NewParser(lex *lexicon.Lexicon, opts ...Option) (*Parser, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}

	p := &Parser{
		lex:     lex,
		logger:  slog.Default(),
		monitor: &noopMonitor{},
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// state threads the remaining-text accumulator and the result through the
// pipeline stages.
type state struct {
	remaining string
	query     *core.ParsedQuery
}

// strip removes the first occurrence of match from the remaining text,
// leaving a space so neighboring tokens don't glue together.
func (st *state) strip(match string) {
	if match == "" {
		return
	}
	st.remaining = strings.Replace(st.remaining, match, " ", 1)
}

// pipeline is the extraction order. It is part of the contract: reordering
// stages changes which reading wins for ambiguous tokens.
var pipeline = []struct {
	name string
	run  func(*Parser, *state) string
}{
	{"intent", (*Parser).stageIntent},
	{"gift_target", (*Parser).stageGiftTarget},
	{"price", (*Parser).stagePrice},
	{"condition", (*Parser).stageCondition},
	{"karat", (*Parser).stageKarat},
	{"year", (*Parser).stageYear},
	{"rooms", (*Parser).stageRooms},
	{"area", (*Parser).stageArea},
	{"storage", (*Parser).stageStorage},
	{"brand", (*Parser).stageBrand},
	{"location", (*Parser).stageLocation},
	{"category", (*Parser).stageCategory},
	{"price_band", (*Parser).stagePriceBand},
	{"cleanup", (*Parser).stageCleanup},
}

// Parse runs the full stage pipeline over text and returns the structured
// result. It never fails: unrecognized text simply ends up in CleanQuery
// and the result keeps its defaults.
func (p *Parser) Parse(text string) *core.ParsedQuery {
	query := core.NewParsedQuery(text)
	p.monitor.Start(text)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		query.Confidence = emptyQueryConfidence
		p.monitor.Finish(query)
		return query
	}

	st := &state{remaining: trimmed, query: query}
	for _, stage := range pipeline {
		matched := stage.run(p, st)
		p.monitor.StageApplied(stage.name, matched, st.remaining)
	}

	query.Confidence = Score(query)
	p.logger.Debug("parsed query",
		"query", text,
		"intent", query.Intent,
		"category", query.PrimaryCategory,
		"brand", query.Brand,
		"confidence", query.Confidence,
	)
	p.monitor.Finish(query)
	return query
}
