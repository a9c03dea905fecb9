package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

type pokedexService interface {
	GetList(ctx context.Context, offset, limit int) (domain.ListPage, error)
	Search(ctx context.Context, query string) ([]domain.ListItem, error)
	GetDetailByID(ctx context.Context, id int) (domain.PokemonDetail, error)
	GetDetailByURL(ctx context.Context, url string) (domain.PokemonDetail, error)
}

// PokemonHandler serves the catalog, search and detail endpoints.
type PokemonHandler struct {
	svc          pokedexService
	log          *slog.Logger
	maxBatchIDs  int
	batchWorkers int
}

// NewPokemonHandler creates a PokemonHandler. maxBatchIDs bounds the ids of
// one batch request; batchWorkers bounds its concurrent upstream fetches.
func NewPokemonHandler(svc pokedexService, logger *slog.Logger, maxBatchIDs, batchWorkers int) *PokemonHandler {
	if maxBatchIDs <= 0 {
		maxBatchIDs = 50
	}
	if batchWorkers <= 0 {
		batchWorkers = 1
	}
	return &PokemonHandler{
		svc:          svc,
		log:          logger.With("handler", "pokemon"),
		maxBatchIDs:  maxBatchIDs,
		batchWorkers: batchWorkers,
	}
}

type listItemResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	DisplayNumber string `json:"display_number"`
	URL           string `json:"url"`
	ImageURL      string `json:"image_url"`
}

type listResponse struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []listItemResponse `json:"results"`
}

type searchResponse struct {
	Query   string             `json:"query"`
	Results []listItemResponse `json:"results"`
}

type detailResponse struct {
	domain.PokemonDetail
	DisplayName   string   `json:"display_name"`
	DisplayNumber string   `json:"display_number"`
	PrimaryType   string   `json:"primary_type"`
	HeightMeters  float64  `json:"height_m"`
	WeightKg      float64  `json:"weight_kg"`
	AllImages     []string `json:"all_images"`
}

type spriteStyleResponse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	SupportsBack bool   `json:"supports_back_view"`
}

const spriteStyleAuto = "auto"

type spriteResponse struct {
	ID    int    `json:"id"`
	Style string `json:"style"`
	Shiny bool   `json:"shiny"`
	Front bool   `json:"front"`
	URL   string `json:"url"`
}

// List handles GET /api/v1/pokemon?offset=&limit=.
func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, err := intParam(r, "offset", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.GetList(r.Context(), offset, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Count:    page.Count,
		Next:     page.Next,
		Previous: page.Previous,
		Results:  toListItems(page.Results),
	})
}

// Search handles GET /api/v1/pokemon/search?q=.
func (h *PokemonHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	items, err := h.svc.Search(r.Context(), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Query: q, Results: toListItems(items)})
}

// Get handles GET /api/v1/pokemon/{id}.
func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	detail, err := h.svc.GetDetailByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetail(detail))
}

// Lookup handles GET /api/v1/pokemon/lookup?url=, resolving a resource URL
// taken from a list item.
func (h *PokemonHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if strings.TrimSpace(raw) == "" {
		handleError(w, r, h.log, domain.NewValidationError("url", "required"))
		return
	}

	detail, err := h.svc.GetDetailByURL(r.Context(), raw)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetail(detail))
}

// SpriteStyles handles GET /api/v1/pokemon/sprite-styles.
func (h *PokemonHandler) SpriteStyles(w http.ResponseWriter, _ *http.Request) {
	out := make([]spriteStyleResponse, 0, len(domain.SpriteStyles))
	for _, st := range domain.SpriteStyles {
		out = append(out, spriteStyleResponse{
			Name:         string(st),
			Description:  st.Description(),
			SupportsBack: st.SupportsBackView(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Sprite handles GET /api/v1/pokemon/{id}/sprite?style=&shiny=&front=. An
// absent style picks the best available image across all families.
func (h *PokemonHandler) Sprite(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	rawStyle := r.URL.Query().Get("style")
	style, ok := domain.ParseSpriteStyle(rawStyle)
	if !ok {
		handleError(w, r, h.log, domain.NewValidationError("style", "must be official, home or game"))
		return
	}
	shiny, err := boolParam(r, "shiny", false)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	front, err := boolParam(r, "front", true)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	detail, err := h.svc.GetDetailByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	// Without a style the best image for the toggles wins, whatever family
	// it comes from.
	url, styleName := detail.Sprites.Current(shiny, front), spriteStyleAuto
	if rawStyle != "" {
		url, styleName = detail.Sprites.Resolve(style, shiny, front), string(style)
	}
	if url == "" {
		writeError(w, http.StatusNotFound, codeNotFound, "no sprite available")
		return
	}

	writeJSON(w, http.StatusOK, spriteResponse{
		ID:    detail.ID,
		Style: styleName,
		Shiny: shiny,
		Front: front,
		URL:   url,
	})
}

func toListItems(items []domain.ListItem) []listItemResponse {
	out := make([]listItemResponse, 0, len(items))
	for _, it := range items {
		p := it.Summary()
		out = append(out, listItemResponse{
			ID:            p.ID,
			Name:          p.Name,
			DisplayName:   p.DisplayName(),
			DisplayNumber: p.DisplayNumber(),
			URL:           p.URL,
			ImageURL:      p.ImageURL,
		})
	}
	return out
}

func toDetail(d domain.PokemonDetail) detailResponse {
	return detailResponse{
		PokemonDetail: d,
		DisplayName:   d.DisplayName(),
		DisplayNumber: d.DisplayNumber(),
		PrimaryType:   d.PrimaryType(),
		HeightMeters:  d.HeightInMeters(),
		WeightKg:      d.WeightInKilograms(),
		AllImages:     d.Sprites.AllNonEmptyImages(),
	}
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return v, nil
}

func boolParam(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(name, "must be a boolean")
	}
	return v, nil
}
