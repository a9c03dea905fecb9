package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

const batchWait = 2 * time.Millisecond

type detailFetcher interface {
	GetDetailByID(ctx context.Context, id int) (domain.PokemonDetail, error)
}

// newDetailLoader returns a request-scoped loader. Duplicate ids within a
// request share one fetch; a batch fans out with at most workers fetches in
// flight.
func newDetailLoader(svc detailFetcher, workers, capacity int) *dataloader.Loader[int, domain.PokemonDetail] {
	return dataloader.NewBatchedLoader(
		newDetailBatchFn(svc, workers),
		dataloader.WithWait[int, domain.PokemonDetail](batchWait),
		dataloader.WithBatchCapacity[int, domain.PokemonDetail](capacity),
	)
}

func newDetailBatchFn(svc detailFetcher, workers int) dataloader.BatchFunc[int, domain.PokemonDetail] {
	return func(ctx context.Context, keys []int) []*dataloader.Result[domain.PokemonDetail] {
		results := make([]*dataloader.Result[domain.PokemonDetail], len(keys))

		var g errgroup.Group
		g.SetLimit(workers)
		for i, id := range keys {
			g.Go(func() error {
				d, err := svc.GetDetailByID(ctx, id)
				results[i] = &dataloader.Result[domain.PokemonDetail]{Data: d, Error: err}
				return nil
			})
		}
		_ = g.Wait()

		return results
	}
}

type batchItem struct {
	ID      int             `json:"id"`
	Pokemon *detailResponse `json:"pokemon,omitempty"`
	Error   *errorBody      `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
}

// Batch handles GET /api/v1/pokemon/batch?ids=1,4,7. Results keep request
// order; a failed id carries its own error and does not fail the request.
func (h *PokemonHandler) Batch(w http.ResponseWriter, r *http.Request) {
	ids, err := h.parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	loader := newDetailLoader(h.svc, h.batchWorkers, h.maxBatchIDs)
	thunks := make([]dataloader.Thunk[domain.PokemonDetail], len(ids))
	for i, id := range ids {
		thunks[i] = loader.Load(r.Context(), id)
	}

	resp := batchResponse{Results: make([]batchItem, len(ids))}
	for i, thunk := range thunks {
		item := batchItem{ID: ids[i]}
		d, err := thunk()
		if err != nil {
			item.Error = h.itemError(r, err)
		} else {
			detail := toDetail(d)
			item.Pokemon = &detail
		}
		resp.Results[i] = item
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PokemonHandler) parseIDs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewValidationError("ids", "required")
	}

	parts := strings.Split(raw, ",")
	if len(parts) > h.maxBatchIDs {
		return nil, domain.NewValidationError("ids", "at most "+strconv.Itoa(h.maxBatchIDs)+" ids")
	}

	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || id <= 0 {
			return nil, domain.NewValidationError("ids", "must be positive integers")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *PokemonHandler) itemError(r *http.Request, err error) *errorBody {
	if domain.StatusCodeOf(err) == http.StatusNotFound {
		return &errorBody{Code: codeNotFound, Message: "pokemon not found"}
	}
	h.log.WarnContext(r.Context(), "batch item failed", slog.String("error", err.Error()))
	return &errorBody{Code: codeUpstream, Message: "pokeapi is unavailable"}
}
