package viewstate

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// CatalogPageSize is the limit of the initial load; it covers every species
// so the catalog arrives in a single page.
const CatalogPageSize = 1302

type listLoader interface {
	GetList(ctx context.Context, offset, limit int) (domain.ListPage, error)
	Search(ctx context.Context, query string) ([]domain.ListItem, error)
}

// ListSnapshot is a point-in-time copy of a ListState. Items is what the
// list shows; All is the last loaded catalog.
type ListSnapshot struct {
	Items       []domain.ListItem
	All         []domain.ListItem
	SearchText  string
	IsLoading   bool
	IsSearching bool
	Err         error
}

// ListState drives the catalog screen: one full load plus debounced search.
type ListState struct {
	loader listLoader
	opts   options

	mu       sync.Mutex
	snap     ListSnapshot
	onChange func(ListSnapshot)

	timer     *time.Timer
	lastQuery string // last query that passed the debounce
	searchGen uint64
}

func NewListState(loader listLoader, opts ...Option) *ListState {
	o := buildOptions(opts)
	o.log = o.log.With("viewstate", "list")
	return &ListState{
		loader: loader,
		opts:   o,
	}
}

// OnChange registers fn to receive every new snapshot. It replaces any
// previous subscriber.
func (s *ListState) OnChange(fn func(ListSnapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *ListState) Snapshot() ListSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// LoadInitial loads the full catalog. It returns immediately when a load is
// already in flight.
func (s *ListState) LoadInitial(ctx context.Context) {
	s.load(ctx)
}

// Refresh drops the loaded catalog and loads it again.
func (s *ListState) Refresh(ctx context.Context) {
	s.update(func(snap *ListSnapshot) bool {
		snap.All = nil
		snap.Items = nil
		return true
	})
	s.load(ctx)
}

// SetSearchText records text and schedules a search once it has been stable
// for the debounce interval. A settled text equal to the previous settled
// text is ignored. Settling on "" restores the full catalog without a search.
func (s *ListState) SetSearchText(ctx context.Context, text string) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.debounce, func() { s.settle(ctx, text) })
	changed := s.snap.SearchText != text
	s.snap.SearchText = text
	snap, fn := s.copyLocked(), s.onChange
	s.mu.Unlock()

	if changed && fn != nil {
		fn(snap)
	}
}

// Retry clears the last error and repeats the failed work: the catalog load
// when there is no search text, otherwise the current search.
func (s *ListState) Retry(ctx context.Context) {
	var query string
	s.update(func(snap *ListSnapshot) bool {
		query = snap.SearchText
		snap.Err = nil
		return true
	})

	if query == "" {
		s.load(ctx)
		return
	}
	s.mu.Lock()
	s.lastQuery = query
	s.mu.Unlock()
	s.search(ctx, query)
}

// Close cancels a pending debounced search.
func (s *ListState) Close() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
}

func (s *ListState) load(ctx context.Context) {
	started := s.update(func(snap *ListSnapshot) bool {
		if snap.IsLoading {
			return false
		}
		snap.IsLoading = true
		snap.Err = nil
		return true
	})
	if !started {
		return
	}

	page, err := s.loader.GetList(ctx, 0, CatalogPageSize)
	if err != nil {
		s.opts.log.WarnContext(ctx, "catalog load failed", slog.String("error", err.Error()))
	}

	s.opts.dispatcher.Dispatch(func() {
		s.update(func(snap *ListSnapshot) bool {
			snap.IsLoading = false
			if err != nil {
				snap.Err = err
				return true
			}
			snap.All = page.Results
			snap.Items = page.Results
			return true
		})
	})
}

func (s *ListState) settle(ctx context.Context, query string) {
	s.mu.Lock()
	if query == s.lastQuery {
		s.mu.Unlock()
		return
	}
	s.lastQuery = query
	s.mu.Unlock()

	s.search(ctx, query)
}

func (s *ListState) search(ctx context.Context, query string) {
	if query == "" {
		s.mu.Lock()
		s.searchGen++
		s.mu.Unlock()
		s.opts.dispatcher.Dispatch(func() {
			s.update(func(snap *ListSnapshot) bool {
				snap.Items = snap.All
				snap.IsSearching = false
				return true
			})
		})
		return
	}

	var gen uint64
	s.update(func(snap *ListSnapshot) bool {
		s.searchGen++
		gen = s.searchGen
		snap.IsSearching = true
		return true
	})

	items, err := s.loader.Search(ctx, query)
	if err != nil {
		s.opts.log.WarnContext(ctx, "search failed", slog.String("query", query), slog.String("error", err.Error()))
	}

	s.opts.dispatcher.Dispatch(func() {
		s.update(func(snap *ListSnapshot) bool {
			// A newer query owns the list now.
			if gen != s.searchGen {
				return false
			}
			snap.IsSearching = false
			if err != nil {
				snap.Err = err
				return true
			}
			snap.Items = items
			return true
		})
	})
}

// update applies mutate under the lock and notifies the subscriber when
// mutate reports a change.
func (s *ListState) update(mutate func(*ListSnapshot) bool) bool {
	s.mu.Lock()
	if !mutate(&s.snap) {
		s.mu.Unlock()
		return false
	}
	snap, fn := s.copyLocked(), s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return true
}

func (s *ListState) copyLocked() ListSnapshot {
	snap := s.snap
	snap.Items = slices.Clone(snap.Items)
	snap.All = slices.Clone(snap.All)
	return snap
}
