package wish

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mataa-market/mataa/core"
	"github.com/mataa-market/mataa/kv"
)

const (
	// MaxWishes is the store capacity; creating beyond it evicts the
	// oldest wishes.
	MaxWishes = 10

	// quotaEvictCount is how many of the oldest wishes are dropped before
	// the single retry after a quota-exceeded write.
	quotaEvictCount = 2

	storageKey = "mataa:wishes"
)

// Store persists search wishes through a kv.Store under a single key.
// Persistence is best effort: quota failures evict and retry once, corrupt
// stored data degrades to an empty collection. There is no transactional
// guarantee across concurrent writers of the same backing store; the last
// write wins.
type Store struct {
	mu      sync.Mutex
	storage kv.Store
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithClock sets the time source. Used by tests to pin creation times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			now = time.Now
		}
		s.now = now
		return nil
	}
}

// NewStore creates a wish store over the given key-value storage.
func NewStore(storage kv.Store, opts ...Option) (*Store, error) {
	if storage == nil {
		return nil, ErrStorageRequired
	}

	s := &Store{
		storage: storage,
		logger:  slog.Default(),
		now:     time.Now,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Create saves a new wish for the query, or reactivates the existing one
// when an identical query string was saved before. Filters default to the
// parsed query's facets where not explicitly set. The newest wish sits at
// the front; the collection is truncated to MaxWishes, oldest first.
func (s *Store) Create(query string, parsed *core.ParsedQuery, filters *core.WishFilters) (*core.SearchWish, error) {
	if query == "" {
		return nil, core.ErrEmptyWishQuery
	}
	if parsed == nil {
		return nil, ErrParsedQueryRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wishes := s.load()
	now := s.now()

	for i := range wishes {
		if wishes[i].Query == query {
			wishes[i].IsActive = true
			wishes[i].LastCheckedAt = now
			if err := s.save(wishes); err != nil {
				return nil, err
			}
			existing := wishes[i]
			return &existing, nil
		}
	}

	created := core.SearchWish{
		ID:            core.NewWishID(query, now),
		Query:         query,
		Parsed:        *parsed,
		Filters:       defaultFilters(parsed, filters),
		CreatedAt:     now,
		LastCheckedAt: now,
		IsActive:      true,
	}
	created.DisplayText = composeDisplayText(&created)

	wishes = append([]core.SearchWish{created}, wishes...)
	if len(wishes) > MaxWishes {
		wishes = wishes[:MaxWishes]
	}

	if err := s.save(wishes); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies mutate to the wish with the given id and persists it.
func (s *Store) Update(id core.WishID, mutate func(*core.SearchWish)) (*core.SearchWish, error) {
	if mutate == nil {
		return nil, ErrMutatorRequired
	}
	return s.update(id, mutate)
}

// Delete removes the wish with the given id.
func (s *Store) Delete(id core.WishID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wishes := s.load()
	for i := range wishes {
		if wishes[i].ID == id {
			wishes = append(wishes[:i], wishes[i+1:]...)
			return s.save(wishes)
		}
	}
	return fmt.Errorf("%w: %s", ErrWishNotFound, id)
}

// ToggleActive flips the wish's active flag.
func (s *Store) ToggleActive(id core.WishID) (*core.SearchWish, error) {
	return s.update(id, func(w *core.SearchWish) {
		w.IsActive = !w.IsActive
	})
}

// MarkViewed clears the wish's unseen-match counter and refreshes its
// check time. The lifetime match total is untouched.
func (s *Store) MarkViewed(id core.WishID) (*core.SearchWish, error) {
	now := s.now()
	return s.update(id, func(w *core.SearchWish) {
		w.NewMatchCount = 0
		w.LastCheckedAt = now
	})
}

// RecordMatches adds n newly found listing matches to the wish. This is
// the write half of the external matching job's contract.
func (s *Store) RecordMatches(id core.WishID, n int) (*core.SearchWish, error) {
	if n < 0 {
		return nil, fmt.Errorf("match count must not be negative: %d", n)
	}
	now := s.now()
	return s.update(id, func(w *core.SearchWish) {
		w.MatchCount += n
		w.NewMatchCount += n
		w.LastCheckedAt = now
	})
}

// All returns every stored wish, newest first.
func (s *Store) All() []core.SearchWish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// ActiveNewMatches sums the unseen-match counters of active wishes.
func (s *Store) ActiveNewMatches() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, w := range s.load() {
		if w.IsActive {
			total += w.NewMatchCount
		}
	}
	return total
}

func (s *Store) update(id core.WishID, mutate func(*core.SearchWish)) (*core.SearchWish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wishes := s.load()
	for i := range wishes {
		if wishes[i].ID == id {
			mutate(&wishes[i])
			if err := s.save(wishes); err != nil {
				return nil, err
			}
			updated := wishes[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrWishNotFound, id)
}

// load reads the stored collection. Read failures and corrupt data both
// degrade to an empty collection.
func (s *Store) load() []core.SearchWish {
	blob, ok, err := s.storage.Get(storageKey)
	if err != nil {
		s.logger.Warn("error reading wish store, starting empty", "err", err)
		return nil
	}
	if !ok {
		return nil
	}

	var wishes []core.SearchWish
	if err := json.Unmarshal([]byte(blob), &wishes); err != nil {
		s.logger.Warn("corrupt wish store, starting empty", "err", err)
		return nil
	}
	return wishes
}

// save writes the collection. A quota-exceeded write drops the two oldest
// wishes and retries once; a second failure is swallowed so saving a
// search never breaks the search itself.
func (s *Store) save(wishes []core.SearchWish) error {
	blob, err := json.Marshal(wishes)
	if err != nil {
		return fmt.Errorf("marshaling wishes: %w", err)
	}

	err = s.storage.Set(storageKey, string(blob))
	if err == nil {
		return nil
	}
	if !errors.Is(err, kv.ErrQuotaExceeded) {
		return fmt.Errorf("writing wish store: %w", err)
	}

	if len(wishes) > quotaEvictCount {
		wishes = wishes[:len(wishes)-quotaEvictCount]
	} else {
		wishes = nil
	}
	blob, err = json.Marshal(wishes)
	if err != nil {
		return fmt.Errorf("marshaling wishes: %w", err)
	}
	if err := s.storage.Set(storageKey, string(blob)); err != nil {
		s.logger.Warn("wish store write dropped after quota retry", "err", err)
	}
	return nil
}

// defaultFilters fills unset filter fields from the parsed snapshot.
func defaultFilters(parsed *core.ParsedQuery, explicit *core.WishFilters) core.WishFilters {
	var filters core.WishFilters
	if explicit != nil {
		filters = *explicit
	}
	if filters.Category == "" {
		filters.Category = parsed.PrimaryCategory
	}
	if filters.SaleType == "" {
		filters.SaleType = parsed.SaleType
	}
	if filters.PriceMin == nil {
		filters.PriceMin = parsed.PriceMin
	}
	if filters.PriceMax == nil {
		filters.PriceMax = parsed.PriceMax
	}
	if filters.Governorate == "" {
		filters.Governorate = parsed.Governorate
	}
	if filters.Condition == "" {
		filters.Condition = parsed.ConditionHint
	}
	return filters
}

// composeDisplayText builds the fallback display line: category, raw
// query, governorate, price cap, joined by an em-dash.
func composeDisplayText(w *core.SearchWish) string {
	var parts []string
	if w.Filters.Category != "" {
		parts = append(parts, w.Filters.Category)
	}
	if w.Query != "" {
		parts = append(parts, w.Query)
	}
	if w.Filters.Governorate != "" {
		parts = append(parts, "في "+w.Filters.Governorate)
	}
	if w.Filters.PriceMax != nil {
		parts = append(parts, fmt.Sprintf("تحت %d جنيه", *w.Filters.PriceMax))
	}
	return strings.Join(parts, " — ")
}
