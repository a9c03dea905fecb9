package pokedex

import (
	"context"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// GetList returns one page of the catalog. A non-positive limit selects the
// configured page size. Offset is passed through unchanged.
func (s *Service) GetList(ctx context.Context, offset, limit int) (domain.ListPage, error) {
	if limit <= 0 {
		limit = s.pageSize
	}

	return s.list.GetList(ctx, offset, limit)
}
