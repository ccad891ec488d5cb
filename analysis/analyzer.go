package analysis

import (
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mataa-market/mataa/parse"
)

// lowConfidenceThreshold marks queries the pipeline barely structured.
const lowConfidenceThreshold = 0.5

// Report summarizes how well the lexicon covers a query corpus.
type Report struct {
	Total          int
	WithCategory   int
	WithBrand      int
	WithLocation   int
	WithPrice      int
	LowConfidence  int
	MeanConfidence float64

	// UnresolvedTokens counts tokens no extraction stage consumed,
	// the raw material for lexicon overlay additions.
	UnresolvedTokens map[string]int
}

// TopUnresolved returns the n most frequent unresolved tokens, most
// frequent first. Ties order alphabetically.
func (r *Report) TopUnresolved(n int) []string {
	tokens := make([]string, 0, len(r.UnresolvedTokens))
	for t := range r.UnresolvedTokens {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool {
		ci, cj := r.UnresolvedTokens[tokens[i]], r.UnresolvedTokens[tokens[j]]
		if ci != cj {
			return ci > cj
		}
		return tokens[i] < tokens[j]
	})
	if len(tokens) > n {
		tokens = tokens[:n]
	}
	return tokens
}

// Analyzer runs a parser over a query corpus concurrently and aggregates
// coverage statistics. A lexicon maintainer uses the report to find
// vocabulary gaps worth adding to an overlay.
type Analyzer struct {
	parser *parse.Parser
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithPoolSize sets the worker pool size for concurrent parsing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			size = 1
		}
		if a.pool != nil {
			a.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates an analyzer over the given parser.
func NewAnalyzer(parser *parse.Parser, opts ...Option) (*Analyzer, error) {
	if parser == nil {
		return nil, ErrParserRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		parser: parser,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.Release()
			return nil, optErr
		}
	}

	return a, nil
}

// Release shuts down the worker pool.
func (a *Analyzer) Release() {
	if a.pool != nil {
		a.pool.Release()
	}
}

// Analyze parses every query in the corpus and returns the aggregate
// report. Blank lines are skipped.
func (a *Analyzer) Analyze(queries []string) (*Report, error) {
	report := &Report{UnresolvedTokens: make(map[string]int)}

	var (
		mu              sync.Mutex
		wg              sync.WaitGroup
		confidenceTotal float64
	)

	for _, raw := range queries {
		query := strings.TrimSpace(raw)
		if query == "" {
			continue
		}

		wg.Add(1)
		err := a.pool.Submit(func() {
			defer wg.Done()
			parsed := a.parser.Parse(query)

			mu.Lock()
			defer mu.Unlock()
			report.Total++
			confidenceTotal += parsed.Confidence
			if parsed.PrimaryCategory != "" {
				report.WithCategory++
			}
			if parsed.Brand != "" {
				report.WithBrand++
			}
			if parsed.Governorate != "" {
				report.WithLocation++
			}
			if parsed.PriceMin != nil || parsed.PriceMax != nil {
				report.WithPrice++
			}
			if parsed.Confidence <= lowConfidenceThreshold {
				report.LowConfidence++
			}
			for _, token := range strings.Fields(parsed.CleanQuery) {
				report.UnresolvedTokens[token]++
			}
		})
		if err != nil {
			wg.Done()
			a.logger.Error("error submitting query to pool", "query", query, "err", err)
			return nil, err
		}
	}

	wg.Wait()
	if report.Total > 0 {
		report.MeanConfidence = confidenceTotal / float64(report.Total)
	}
	return report, nil
}
