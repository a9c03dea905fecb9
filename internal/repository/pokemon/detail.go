package pokemon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/provider/pokeapi"
	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// DetailRepository fetches single Pokémon records. Nothing is cached.
type DetailRepository struct {
	log    *slog.Logger
	client apiClient
}

func NewDetailRepository(logger *slog.Logger, client apiClient) *DetailRepository {
	return &DetailRepository{
		log:    logger.With("repository", "pokemon_detail"),
		client: client,
	}
}

// GetByID fetches the detail for a numeric Pokédex id.
func (r *DetailRepository) GetByID(ctx context.Context, id int) (domain.PokemonDetail, error) {
	return r.fetch(ctx, pokeapi.DetailEndpoint(id))
}

// GetByURL fetches the detail behind an absolute resource URL.
func (r *DetailRepository) GetByURL(ctx context.Context, rawURL string) (domain.PokemonDetail, error) {
	return r.fetch(ctx, pokeapi.DetailURLEndpoint(rawURL))
}

func (r *DetailRepository) fetch(ctx context.Context, ep pokeapi.Endpoint) (domain.PokemonDetail, error) {
	var resp pokeapi.DetailResponse
	if err := r.client.Get(ctx, ep, &resp); err != nil {
		return domain.PokemonDetail{}, fmt.Errorf("fetch detail: %w", err)
	}

	detail := pokeapi.MapDetail(resp)
	r.log.DebugContext(ctx, "detail fetched", slog.Int("id", detail.ID), slog.String("name", detail.Name))
	return detail, nil
}
