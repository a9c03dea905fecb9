package viewstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

type detailLoader interface {
	GetDetailByID(ctx context.Context, id int) (domain.PokemonDetail, error)
}

// DetailSnapshot is a point-in-time copy of a DetailState.
type DetailSnapshot struct {
	Pokemon    *domain.PokemonDetail
	IsLoading  bool
	Err        error
	IsFavorite bool
}

// DetailState drives the detail screen of one Pokémon.
type DetailState struct {
	id     int
	loader detailLoader
	opts   options

	mu       sync.Mutex
	snap     DetailSnapshot
	onChange func(DetailSnapshot)
}

func NewDetailState(loader detailLoader, id int, opts ...Option) *DetailState {
	o := buildOptions(opts)
	o.log = o.log.With("viewstate", "detail")
	return &DetailState{
		id:     id,
		loader: loader,
		opts:   o,
	}
}

// ID is the Pokémon this state loads.
func (s *DetailState) ID() int { return s.id }

// OnChange registers fn to receive every new snapshot. It replaces any
// previous subscriber.
func (s *DetailState) OnChange(fn func(DetailSnapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *DetailState) Snapshot() DetailSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Load fetches the record. It returns immediately when a load is already in
// flight. On failure the previous record is kept and Err is set.
func (s *DetailState) Load(ctx context.Context) {
	started := s.update(func(snap *DetailSnapshot) bool {
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

	pokemon, err := s.loader.GetDetailByID(ctx, s.id)
	if err != nil {
		s.opts.log.WarnContext(ctx, "detail load failed", slog.Int("id", s.id), slog.String("error", err.Error()))
	}

	s.opts.dispatcher.Dispatch(func() {
		s.update(func(snap *DetailSnapshot) bool {
			snap.IsLoading = false
			if err != nil {
				snap.Err = err
				return true
			}
			snap.Pokemon = &pokemon
			return true
		})
	})
}

// Retry clears the last error and loads again.
func (s *DetailState) Retry(ctx context.Context) {
	s.update(func(snap *DetailSnapshot) bool {
		if snap.Err == nil {
			return false
		}
		snap.Err = nil
		return true
	})
	s.Load(ctx)
}

// ToggleFavorite flips the local favorite flag.
func (s *DetailState) ToggleFavorite() {
	s.update(func(snap *DetailSnapshot) bool {
		snap.IsFavorite = !snap.IsFavorite
		return true
	})
}

// update applies mutate under the lock and notifies the subscriber when
// mutate reports a change.
func (s *DetailState) update(mutate func(*DetailSnapshot) bool) bool {
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

func (s *DetailState) copyLocked() DetailSnapshot {
	snap := s.snap
	if snap.Pokemon != nil {
		p := *snap.Pokemon
		snap.Pokemon = &p
	}
	return snap
}
