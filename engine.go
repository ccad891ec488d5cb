// Copyright 2026 Mataa Market
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package mataa wires the search-understanding pipeline together: lexicon,
// parser, confidence scorer, and the feedback generators. Understand is
// the one call a search box needs.
package mataa

import (
	"log/slog"

	"github.com/mataa-market/mataa/catalog"
	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/feedback"
	"github.com/mataa-market/mataa/lexicon"
	"github.com/mataa-market/mataa/parse"
)

// Engine is the assembled search-understanding pipeline. It is stateless
// and safe for concurrent use.
type Engine struct {
	lex     *lexicon.Lexicon
	parser  *parse.Parser
	catalog catalog.Provider
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	lex     *lexicon.Lexicon
	catalog catalog.Provider
	logger  *slog.Logger
	monitor parse.Monitor
}

// WithLexicon replaces the built-in lexicon, e.g. one extended with an
// overlay.
func WithLexicon(lex *lexicon.Lexicon) EngineOption {
	return func(o *engineOptions) { o.lex = lex }
}

// WithCatalog replaces the built-in static catalog.
func WithCatalog(provider catalog.Provider) EngineOption {
	return func(o *engineOptions) { o.catalog = provider }
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) { o.logger = logger }
}

// WithMonitor sets a parse monitor receiving per-stage callbacks.
func WithMonitor(monitor parse.Monitor) EngineOption {
	return func(o *engineOptions) { o.monitor = monitor }
}

// NewEngine assembles the pipeline with the built-in lexicon and catalog
// unless options say otherwise.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		lex:     lexicon.Default(),
		catalog: catalog.NewStaticCatalog(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	parserOpts := []parse.Option{parse.WithLogger(options.logger)}
	if options.monitor != nil {
		parserOpts = append(parserOpts, parse.WithMonitor(options.monitor))
	}
	parser, err := parse.NewParser(options.lex, parserOpts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		lex:     options.lex,
		parser:  parser,
		catalog: options.catalog,
		logger:  options.logger,
	}, nil
}

// Understand parses the query and fills in the interpretation and
// alternative queries. It never fails; unrecognized input yields a
// low-information browse result.
func (e *Engine) Understand(text string) *core.ParsedQuery {
	query := e.parser.Parse(text)
	query.Interpretation = feedback.Interpretation(query, e.catalog)
	query.AlternativeQueries = feedback.Alternatives(query, e.catalog)
	return query
}

// Refinements returns filter chips for the facets the query left open.
func (e *Engine) Refinements(query *core.ParsedQuery) []feedback.Refinement {
	return feedback.Refinements(query, e.catalog, e.lex)
}

// EmptySuggestions returns the recovery actions for an empty result page.
func (e *Engine) EmptySuggestions(query *core.ParsedQuery) []feedback.Suggestion {
	return feedback.EmptySuggestions(query, e.catalog, e.lex)
}

// Parser exposes the underlying parser, e.g. for the coverage analyzer.
func (e *Engine) Parser() *parse.Parser {
	return e.parser
}

// Lexicon exposes the engine's lexicon.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// Catalog exposes the engine's catalog provider.
func (e *Engine) Catalog() catalog.Provider {
	return e.catalog
}
