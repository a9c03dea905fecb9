package pokedex

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// Search returns catalog items whose name contains query. A blank query
// returns an empty result without loading the catalog; any other query is
// matched exactly as given, surrounding spaces included.
func (s *Service) Search(ctx context.Context, query string) ([]domain.ListItem, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.ListItem{}, nil
	}

	items, err := s.list.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "search", slog.String("query", query), slog.Int("matches", len(items)))
	return items, nil
}
