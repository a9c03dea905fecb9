package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
	"github.com/heartmarshall/pokedex-pocket/pkg/ctxutil"
)

// Error codes in error responses.
const (
	codeInvalidArgument = "invalid_argument"
	codeNotFound        = "not_found"
	codeUpstream        = "upstream_unavailable"
	codeInternal        = "internal"
)

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// handleError maps a use-case error onto an HTTP status. Upstream 404 stays
// 404; every other upstream failure is a bad gateway.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    codeInvalidArgument,
			Message: "invalid request",
			Fields:  ve.Errors,
		}})

	case errors.Is(err, domain.ErrInvalidURL), errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeInvalidArgument, err.Error())

	case errors.Is(err, domain.ErrNotFound), domain.StatusCodeOf(err) == http.StatusNotFound:
		writeError(w, http.StatusNotFound, codeNotFound, "pokemon not found")

	case errors.Is(err, domain.ErrServer),
		errors.Is(err, domain.ErrNetwork),
		errors.Is(err, domain.ErrNoData),
		errors.Is(err, domain.ErrDecoding):
		log.WarnContext(r.Context(), "upstream failure",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusBadGateway, codeUpstream, "pokeapi is unavailable")

	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
