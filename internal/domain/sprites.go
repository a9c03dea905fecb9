package domain

import "strings"

// SpriteStyle selects the artwork family shown on the detail screen.
type SpriteStyle string

const (
	SpriteStyleOfficialArtwork SpriteStyle = "Official Artwork"
	SpriteStyleHome            SpriteStyle = "Home Style"
	SpriteStyleGame            SpriteStyle = "Game Sprites"
)

// SpriteStyles lists the selectable styles in display order.
var SpriteStyles = []SpriteStyle{SpriteStyleOfficialArtwork, SpriteStyleHome, SpriteStyleGame}

// ParseSpriteStyle accepts a display name ("Home Style") or a short slug
// ("official", "home", "game"), ignoring case. An empty string selects
// official artwork.
func ParseSpriteStyle(s string) (SpriteStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "official", "official-artwork", "official artwork":
		return SpriteStyleOfficialArtwork, true
	case "home", "home style":
		return SpriteStyleHome, true
	case "game", "game sprites":
		return SpriteStyleGame, true
	default:
		return "", false
	}
}

// SupportsBackView reports whether the style has rear-facing sprites.
func (s SpriteStyle) SupportsBackView() bool { return s == SpriteStyleGame }

func (s SpriteStyle) Description() string {
	switch s {
	case SpriteStyleOfficialArtwork:
		return "High-quality official artwork"
	case SpriteStyleHome:
		return "Pokemon Home style sprites"
	case SpriteStyleGame:
		return "Classic pixelated game sprites"
	default:
		return ""
	}
}

// SpriteSet holds every sprite URL the detail screen can show. Any of them may
// be missing. The Best* accessors walk fixed precedence orders; the order is
// visible to users, so do not reshuffle it.
type SpriteSet struct {
	FrontDefault         *string `json:"front_default"`
	FrontShiny           *string `json:"front_shiny"`
	BackDefault          *string `json:"back_default"`
	BackShiny            *string `json:"back_shiny"`
	OfficialArtwork      *string `json:"official_artwork"`
	OfficialArtworkShiny *string `json:"official_artwork_shiny"`
	DreamWorld           *string `json:"dream_world"`
	Home                 *string `json:"home"`
	HomeShiny            *string `json:"home_shiny"`
}

// BestImage: official artwork, home, dream world, front default, "".
func (s SpriteSet) BestImage() string {
	return orDefault("", s.OfficialArtwork, s.Home, s.DreamWorld, s.FrontDefault)
}

// BestShinyImage: official artwork shiny, home shiny, front shiny, BestImage.
func (s SpriteSet) BestShinyImage() string {
	return orDefault(s.BestImage(), s.OfficialArtworkShiny, s.HomeShiny, s.FrontShiny)
}

// BestBackImage: back default, front default, "".
func (s SpriteSet) BestBackImage() string {
	return orDefault("", s.BackDefault, s.FrontDefault)
}

// BestBackShinyImage: back shiny, front shiny, BestBackImage.
func (s SpriteSet) BestBackShinyImage() string {
	return orDefault(s.BestBackImage(), s.BackShiny, s.FrontShiny)
}

// AllNonEmptyImages returns the four Best* images in order, skipping empty
// ones. Duplicates are kept.
func (s SpriteSet) AllNonEmptyImages() []string {
	all := []string{s.BestImage(), s.BestShinyImage(), s.BestBackImage(), s.BestBackShinyImage()}
	out := make([]string, 0, len(all))
	for _, img := range all {
		if img != "" {
			out = append(out, img)
		}
	}
	return out
}

// Current picks the best image for the shiny/front toggles.
func (s SpriteSet) Current(shiny, front bool) string {
	switch {
	case !shiny && front:
		return s.BestImage()
	case shiny && front:
		return s.BestShinyImage()
	case !shiny && !front:
		return s.BestBackImage()
	default:
		return s.BestBackShinyImage()
	}
}

// Resolve picks the image for a sprite style. Unknown styles fall back to
// BestImage.
func (s SpriteSet) Resolve(style SpriteStyle, shiny, front bool) string {
	switch style {
	case SpriteStyleOfficialArtwork:
		if shiny {
			return orDefault(s.BestShinyImage(), s.OfficialArtworkShiny, s.OfficialArtwork)
		}
		return orDefault(s.BestImage(), s.OfficialArtwork)

	case SpriteStyleHome:
		if shiny {
			return orDefault(s.BestShinyImage(), s.HomeShiny, s.Home)
		}
		return orDefault(s.BestImage(), s.Home)

	case SpriteStyleGame:
		switch {
		case !shiny && front:
			return orDefault(s.BestImage(), s.FrontDefault)
		case shiny && front:
			return orDefault(s.BestShinyImage(), s.FrontShiny, s.FrontDefault)
		case !shiny && !front:
			return orDefault(s.BestImage(), s.BackDefault, s.FrontDefault)
		default:
			return orDefault(s.BestBackShinyImage(), s.BackShiny, s.BackDefault, s.FrontShiny)
		}

	default:
		return s.BestImage()
	}
}

// firstNonNil returns the first non-nil pointer, or nil.
func firstNonNil(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// orDefault dereferences the first non-nil candidate, or returns fallback.
// A present empty string wins over fallback.
func orDefault(fallback string, candidates ...*string) string {
	if v := firstNonNil(candidates...); v != nil {
		return *v
	}
	return fallback
}
