package pokeapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// DefaultBaseURL is the public PokéAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Endpoint is a logical GET request against PokéAPI. Relative endpoints are
// resolved against the client's base URL; absolute ones are used as-is.
type Endpoint struct {
	kind     string
	path     string
	query    url.Values
	absolute bool
	rawURL   string
}

// ListEndpoint requests one window of the species catalog.
func ListEndpoint(offset, limit int) Endpoint {
	return Endpoint{
		kind: "list",
		path: "/pokemon",
		query: url.Values{
			"offset": {strconv.Itoa(offset)},
			"limit":  {strconv.Itoa(limit)},
		},
	}
}

// DetailEndpoint requests a single Pokémon by its numeric id.
func DetailEndpoint(id int) Endpoint {
	return Endpoint{kind: "detail", path: "/pokemon/" + strconv.Itoa(id)}
}

// DetailURLEndpoint requests a single Pokémon by an absolute resource URL,
// typically the url of a ListItem.
func DetailURLEndpoint(rawURL string) Endpoint {
	return Endpoint{kind: "detail_url", absolute: true, rawURL: rawURL}
}

// Kind names the endpoint family. Used as a metrics and log label.
func (e Endpoint) Kind() string { return e.kind }

// Resolve returns the request URL. Absolute endpoints must be http(s) with a
// host; anything else yields domain.ErrInvalidURL.
func (e Endpoint) Resolve(baseURL string) (string, error) {
	if e.kind == "" {
		return "", fmt.Errorf("empty endpoint: %w", domain.ErrInvalidURL)
	}

	raw := e.rawURL
	if !e.absolute {
		raw = strings.TrimRight(baseURL, "/") + e.path
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", raw, domain.ErrInvalidURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute http url: %w", raw, domain.ErrInvalidURL)
	}

	if len(e.query) > 0 {
		u.RawQuery = e.query.Encode()
	}
	return u.String(), nil
}
