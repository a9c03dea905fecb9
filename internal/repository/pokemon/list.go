package pokemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/provider/pokeapi"
	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

const (
	// CatalogCacheKey is the cache key of the full species catalog.
	CatalogCacheKey = "pokemon_list"
	// CatalogSize is the number of species in the full catalog. A list
	// request from offset 0 with at least this limit is a catalog request.
	CatalogSize = 1302
	// DefaultCatalogMaxAge is how long a cached catalog is served.
	DefaultCatalogMaxAge = 24 * time.Hour
)

type apiClient interface {
	Get(ctx context.Context, ep pokeapi.Endpoint, out any) error
}

type cacheStore interface {
	IsValid(ctx context.Context, key string, maxAge time.Duration) (bool, error)
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type lookupRecorder interface {
	ObserveCatalogLookup(hit bool)
}

// ListRepository serves list pages and the cached full catalog.
type ListRepository struct {
	log      *slog.Logger
	client   apiClient
	cache    cacheStore
	maxAge   time.Duration
	recorder lookupRecorder
}

// NewListRepository creates a ListRepository. A non-positive maxAge selects
// DefaultCatalogMaxAge; recorder may be nil.
func NewListRepository(
	logger *slog.Logger,
	client apiClient,
	cache cacheStore,
	maxAge time.Duration,
	recorder lookupRecorder,
) *ListRepository {
	if maxAge <= 0 {
		maxAge = DefaultCatalogMaxAge
	}
	return &ListRepository{
		log:      logger.With("repository", "pokemon_list"),
		client:   client,
		cache:    cache,
		maxAge:   maxAge,
		recorder: recorder,
	}
}

// GetList returns one page of the catalog. A request for the whole catalog
// (offset 0, limit >= CatalogSize) goes through the cache; any other window
// is fetched directly and never cached.
func (r *ListRepository) GetList(ctx context.Context, offset, limit int) (domain.ListPage, error) {
	if offset == 0 && limit >= CatalogSize {
		return r.catalog(ctx)
	}
	return r.fetchPage(ctx, offset, limit)
}

// Search returns catalog items whose name contains query, ignoring case, in
// catalog order. An empty query matches everything.
func (r *ListRepository) Search(ctx context.Context, query string) ([]domain.ListItem, error) {
	page, err := r.GetList(ctx, 0, CatalogSize)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.ListItem, 0, len(page.Results))
	for _, item := range page.Results {
		if domain.ContainsFold(item.Name, query) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// catalog serves the full catalog from cache while it is fresh, otherwise
// fetches it and stores the result. Concurrent misses each fetch; the last
// write wins.
func (r *ListRepository) catalog(ctx context.Context) (domain.ListPage, error) {
	valid, err := r.cache.IsValid(ctx, CatalogCacheKey, r.maxAge)
	if err != nil {
		return domain.ListPage{}, fmt.Errorf("catalog cache check: %w", err)
	}

	if valid {
		var cached domain.ListPage
		found, err := r.cache.Get(ctx, CatalogCacheKey, &cached)
		if err != nil {
			return domain.ListPage{}, fmt.Errorf("catalog cache read: %w", err)
		}
		if found {
			r.observe(true)
			r.log.DebugContext(ctx, "catalog served from cache", slog.Int("items", len(cached.Results)))
			return cached, nil
		}
	}

	r.observe(false)

	page, err := r.fetchPage(ctx, 0, CatalogSize)
	if err != nil {
		return domain.ListPage{}, err
	}

	if err := r.cache.Set(ctx, CatalogCacheKey, page); err != nil {
		r.log.WarnContext(ctx, "catalog cache write failed, serving fetched catalog",
			slog.String("error", err.Error()),
		)
	} else {
		r.log.InfoContext(ctx, "catalog fetched and cached", slog.Int("items", len(page.Results)))
	}

	return page, nil
}

func (r *ListRepository) fetchPage(ctx context.Context, offset, limit int) (domain.ListPage, error) {
	var resp pokeapi.ListResponse
	if err := r.client.Get(ctx, pokeapi.ListEndpoint(offset, limit), &resp); err != nil {
		return domain.ListPage{}, fmt.Errorf("fetch list offset=%d limit=%d: %w", offset, limit, err)
	}
	return pokeapi.MapList(resp), nil
}

func (r *ListRepository) observe(hit bool) {
	if r.recorder != nil {
		r.recorder.ObserveCatalogLookup(hit)
	}
}
