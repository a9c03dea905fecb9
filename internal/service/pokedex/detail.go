package pokedex

import (
	"context"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// GetDetailByID returns the full record of one Pokémon.
func (s *Service) GetDetailByID(ctx context.Context, id int) (domain.PokemonDetail, error) {
	return s.details.GetByID(ctx, id)
}

// GetDetailByURL returns the record behind a resource URL taken from a list
// item. A URL that is not absolute http(s) fails with domain.ErrInvalidURL.
func (s *Service) GetDetailByURL(ctx context.Context, url string) (domain.PokemonDetail, error) {
	return s.details.GetByURL(ctx, url)
}
