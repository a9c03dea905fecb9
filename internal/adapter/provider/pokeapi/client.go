package pokeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 16 << 20
)

// Request outcomes reported to the Recorder.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid_url"
	OutcomeNetwork  = "network_error"
	OutcomeServer   = "server_error"
	OutcomeNoData   = "no_data"
	OutcomeDecoding = "decoding_error"
	OutcomeUnknown  = "unknown"
)

// Recorder receives one observation per upstream request.
type Recorder interface {
	ObserveUpstream(endpoint, outcome string, elapsed time.Duration)
}

// keyed is implemented by response envelopes that must carry certain keys.
type keyed interface {
	requiredKeys() []string
}

// Client performs GET requests against PokéAPI and decodes JSON responses.
// Every failure is classified into the domain upstream error taxonomy. There
// is no retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	recorder   Recorder
	log        *slog.Logger
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL, a
// non-positive timeout selects 10s and a nil recorder disables metrics.
func NewClient(baseURL string, timeout time.Duration, recorder Recorder, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		recorder:   recorder,
		log:        logger.With("adapter", "pokeapi"),
	}
}

// Get issues the request described by ep and decodes the body into out.
func (c *Client) Get(ctx context.Context, ep Endpoint, out any) error {
	start := time.Now()
	err := c.get(ctx, ep, out)
	outcome := outcomeOf(err)

	if c.recorder != nil {
		c.recorder.ObserveUpstream(ep.Kind(), outcome, time.Since(start))
	}
	if err != nil {
		c.log.ErrorContext(ctx, "pokeapi request failed",
			slog.String("endpoint", ep.Kind()),
			slog.String("outcome", outcome),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("pokeapi %s: %w", ep.Kind(), err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, ep Endpoint, out any) error {
	reqURL, err := ep.Resolve(c.baseURL)
	if err != nil {
		return err
	}

	c.log.DebugContext(ctx, "pokeapi request", slog.String("endpoint", ep.Kind()), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", domain.ErrInvalidURL)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ServerError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.NetworkError{Cause: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.ErrNoData
	}

	if err := decode(body, out); err != nil {
		return err
	}

	c.log.DebugContext(ctx, "pokeapi response",
		slog.String("endpoint", ep.Kind()),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)
	return nil
}

func decode(body []byte, out any) error {
	if k, ok := out.(keyed); ok {
		if err := missingKey(body, k.requiredKeys()); err != nil {
			return &domain.DecodingError{Cause: err}
		}
	}

	// Nested wire types reject missing keys from their own UnmarshalJSON.
	if err := json.Unmarshal(body, out); err != nil {
		var invalid *json.InvalidUnmarshalError
		if errors.As(err, &invalid) {
			return fmt.Errorf("%w: %v", domain.ErrUnknown, err)
		}
		return &domain.DecodingError{Cause: err}
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidURL):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrNetwork):
		return OutcomeNetwork
	case errors.Is(err, domain.ErrServer):
		return OutcomeServer
	case errors.Is(err, domain.ErrNoData):
		return OutcomeNoData
	case errors.Is(err, domain.ErrDecoding):
		return OutcomeDecoding
	default:
		return OutcomeUnknown
	}
}
