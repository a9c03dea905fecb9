package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// SpriteBaseURL is the root of the PokéAPI sprite repository used to
// synthesize artwork URLs for list items.
const SpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

// ListPage is one page of the species catalog as returned by the list endpoint.
// The full catalog is a ListPage with every species in Results.
type ListPage struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []ListItem `json:"results"`
}

// HasNext reports whether the API returned a next-page link.
// A present but empty link still counts.
func (p ListPage) HasNext() bool { return p.Next != nil }

// HasPrevious reports whether the API returned a previous-page link.
// A present but empty link still counts.
func (p ListPage) HasPrevious() bool { return p.Previous != nil }

// ListItem is a named reference to a single species.
type ListItem struct {
	// ID is the identity key used by list UIs; it is the species name.
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewListItem builds a ListItem keyed by name.
func NewListItem(name, rawURL string) ListItem {
	return ListItem{ID: name, Name: name, URL: rawURL}
}

// NumericID extracts the species number from the last non-empty path segment
// of URL. Query and fragment are ignored. Returns 0 when no number is present.
func (i ListItem) NumericID() int {
	return idFromURL(i.URL)
}

// ImageURL is the official-artwork URL for the item's species number.
func (i ListItem) ImageURL() string {
	return SpriteBaseURL + "/other/official-artwork/" + strconv.Itoa(i.NumericID()) + ".png"
}

// DisplayName is the capitalized species name.
func (i ListItem) DisplayName() string { return Capitalize(i.Name) }

// DisplayNumber is the zero-padded Pokédex number, e.g. "#025".
func (i ListItem) DisplayNumber() string { return FormatNumber(i.NumericID()) }

// Summary converts the item into a Pokemon summary with only the fields a
// list entry can provide.
func (i ListItem) Summary() Pokemon {
	return Pokemon{
		ID:       i.NumericID(),
		Name:     i.Name,
		URL:      i.URL,
		ImageURL: i.ImageURL(),
	}
}

func idFromURL(raw string) int {
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.Path
	} else if cut := strings.IndexAny(raw, "?#"); cut >= 0 {
		path = raw[:cut]
	}

	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return 0
	}

	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil {
		return 0
	}
	return id
}
