package pokedex

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// DefaultLimit is the page size used when a caller asks for none and the
// service was built without one.
const DefaultLimit = 20

type listRepo interface {
	GetList(ctx context.Context, offset, limit int) (domain.ListPage, error)
	Search(ctx context.Context, query string) ([]domain.ListItem, error)
}

type detailRepo interface {
	GetByID(ctx context.Context, id int) (domain.PokemonDetail, error)
	GetByURL(ctx context.Context, url string) (domain.PokemonDetail, error)
}

// Service exposes the Pokédex use cases to transports and view state.
type Service struct {
	log      *slog.Logger
	list     listRepo
	details  detailRepo
	pageSize int
}

// NewService creates a new Pokédex service. pageSize is the limit GetList
// uses when the caller passes none; a non-positive value selects
// DefaultLimit.
func NewService(
	logger *slog.Logger,
	list listRepo,
	details detailRepo,
	pageSize int,
) *Service {
	if pageSize <= 0 {
		pageSize = DefaultLimit
	}
	return &Service{
		log:      logger.With("service", "pokedex"),
		list:     list,
		details:  details,
		pageSize: pageSize,
	}
}

// PageSize is the limit GetList applies when none is given.
func (s *Service) PageSize() int { return s.pageSize }
