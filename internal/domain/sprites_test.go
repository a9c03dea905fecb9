package domain

import (
	"reflect"
	"testing"
)

func sp(s string) *string { return &s }

func fullSprites() SpriteSet {
	return SpriteSet{
		FrontDefault:         sp("front"),
		FrontShiny:           sp("front-shiny"),
		BackDefault:          sp("back"),
		BackShiny:            sp("back-shiny"),
		OfficialArtwork:      sp("art"),
		OfficialArtworkShiny: sp("art-shiny"),
		DreamWorld:           sp("dream"),
		Home:                 sp("home"),
		HomeShiny:            sp("home-shiny"),
	}
}

func TestSpriteSet_BestImageChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  SpriteSet
		want string
	}{
		{"artwork first", fullSprites(), "art"},
		{"home second", SpriteSet{Home: sp("home"), DreamWorld: sp("dream"), FrontDefault: sp("front")}, "home"},
		{"dream world third", SpriteSet{DreamWorld: sp("dream"), FrontDefault: sp("front")}, "dream"},
		{"front last", SpriteSet{FrontDefault: sp("front")}, "front"},
		{"nothing", SpriteSet{}, ""},
		{"present empty wins", SpriteSet{OfficialArtwork: sp(""), FrontDefault: sp("front")}, ""},
	}
	for _, tt := range tests {
		if got := tt.set.BestImage(); got != tt.want {
			t.Errorf("%s: BestImage = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSpriteSet_ShinyAndBackChains(t *testing.T) {
	t.Parallel()

	full := fullSprites()
	if got := full.BestShinyImage(); got != "art-shiny" {
		t.Errorf("BestShinyImage = %q", got)
	}
	if got := (SpriteSet{HomeShiny: sp("hs"), FrontShiny: sp("fs")}).BestShinyImage(); got != "hs" {
		t.Errorf("BestShinyImage = %q, want hs", got)
	}
	if got := (SpriteSet{FrontShiny: sp("fs"), OfficialArtwork: sp("art")}).BestShinyImage(); got != "fs" {
		t.Errorf("BestShinyImage = %q, want fs", got)
	}
	if got := (SpriteSet{OfficialArtwork: sp("art")}).BestShinyImage(); got != "art" {
		t.Errorf("BestShinyImage = %q, want BestImage fallback", got)
	}

	if got := full.BestBackImage(); got != "back" {
		t.Errorf("BestBackImage = %q", got)
	}
	if got := (SpriteSet{FrontDefault: sp("front")}).BestBackImage(); got != "front" {
		t.Errorf("BestBackImage = %q, want front", got)
	}
	if got := (SpriteSet{OfficialArtwork: sp("art")}).BestBackImage(); got != "" {
		t.Errorf("BestBackImage = %q, want empty", got)
	}

	if got := full.BestBackShinyImage(); got != "back-shiny" {
		t.Errorf("BestBackShinyImage = %q", got)
	}
	if got := (SpriteSet{FrontShiny: sp("fs"), BackDefault: sp("b")}).BestBackShinyImage(); got != "fs" {
		t.Errorf("BestBackShinyImage = %q, want fs", got)
	}
	if got := (SpriteSet{BackDefault: sp("b")}).BestBackShinyImage(); got != "b" {
		t.Errorf("BestBackShinyImage = %q, want BestBackImage fallback", got)
	}
}

func TestSpriteSet_AllNonEmptyImages(t *testing.T) {
	t.Parallel()

	if got := (SpriteSet{}).AllNonEmptyImages(); len(got) != 0 {
		t.Errorf("AllNonEmptyImages = %v, want empty", got)
	}

	// Duplicates are kept and order follows the Best* accessors.
	got := SpriteSet{FrontDefault: sp("front")}.AllNonEmptyImages()
	want := []string{"front", "front", "front", "front"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllNonEmptyImages = %v, want %v", got, want)
	}

	got = SpriteSet{OfficialArtwork: sp("art")}.AllNonEmptyImages()
	want = []string{"art", "art"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllNonEmptyImages = %v, want %v", got, want)
	}
}

func TestSpriteSet_Current(t *testing.T) {
	t.Parallel()

	s := fullSprites()
	tests := []struct {
		shiny, front bool
		want         string
	}{
		{false, true, "art"},
		{true, true, "art-shiny"},
		{false, false, "back"},
		{true, false, "back-shiny"},
	}
	for _, tt := range tests {
		if got := s.Current(tt.shiny, tt.front); got != tt.want {
			t.Errorf("Current(%v, %v) = %q, want %q", tt.shiny, tt.front, got, tt.want)
		}
	}
}

func TestSpriteSet_Resolve(t *testing.T) {
	t.Parallel()

	full := fullSprites()
	frontOnly := SpriteSet{FrontDefault: sp("front"), OfficialArtwork: sp("art")}
	shinyFrontOnly := SpriteSet{FrontShiny: sp("front-shiny"), OfficialArtwork: sp("art")}

	tests := []struct {
		name         string
		set          SpriteSet
		style        SpriteStyle
		shiny, front bool
		want         string
	}{
		{"artwork default", full, SpriteStyleOfficialArtwork, false, true, "art"},
		{"artwork shiny", full, SpriteStyleOfficialArtwork, true, true, "art-shiny"},
		{"artwork shiny falls to default", SpriteSet{OfficialArtwork: sp("art"), FrontShiny: sp("fs")}, SpriteStyleOfficialArtwork, true, true, "art"},
		{"artwork missing", SpriteSet{Home: sp("home")}, SpriteStyleOfficialArtwork, false, true, "home"},
		{"artwork shiny missing", SpriteSet{HomeShiny: sp("hs")}, SpriteStyleOfficialArtwork, true, true, "hs"},

		{"home default", full, SpriteStyleHome, false, true, "home"},
		{"home shiny", full, SpriteStyleHome, true, true, "home-shiny"},
		{"home shiny falls to home", SpriteSet{Home: sp("home"), OfficialArtworkShiny: sp("as")}, SpriteStyleHome, true, true, "home"},
		{"home missing", SpriteSet{OfficialArtwork: sp("art")}, SpriteStyleHome, false, true, "art"},

		{"game front", full, SpriteStyleGame, false, true, "front"},
		{"game front shiny", full, SpriteStyleGame, true, true, "front-shiny"},
		{"game front shiny falls to front", frontOnly, SpriteStyleGame, true, true, "front"},
		{"game back", full, SpriteStyleGame, false, false, "back"},
		{"game back falls to front", frontOnly, SpriteStyleGame, false, false, "front"},
		{"game back falls to best", SpriteSet{OfficialArtwork: sp("art")}, SpriteStyleGame, false, false, "art"},
		{"game back shiny", full, SpriteStyleGame, true, false, "back-shiny"},
		{"game back shiny falls to back", SpriteSet{BackDefault: sp("back"), FrontShiny: sp("fs")}, SpriteStyleGame, true, false, "back"},
		{"game back shiny falls to front shiny", shinyFrontOnly, SpriteStyleGame, true, false, "front-shiny"},
		{"game front missing", SpriteSet{OfficialArtwork: sp("art")}, SpriteStyleGame, false, true, "art"},

		{"unknown style", full, SpriteStyle("Pixel Art"), true, false, "art"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.set.Resolve(tt.style, tt.shiny, tt.front); got != tt.want {
				t.Errorf("Resolve(%q, %v, %v) = %q, want %q", tt.style, tt.shiny, tt.front, got, tt.want)
			}
		})
	}
}

func TestSpriteStyle(t *testing.T) {
	t.Parallel()

	for _, s := range SpriteStyles {
		if s.Description() == "" {
			t.Errorf("%q has no description", s)
		}
		if s.SupportsBackView() != (s == SpriteStyleGame) {
			t.Errorf("%q SupportsBackView = %v", s, s.SupportsBackView())
		}
	}
	if SpriteStyle("other").Description() != "" {
		t.Error("unknown style should have no description")
	}
}

func TestParseSpriteStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want SpriteStyle
		ok   bool
	}{
		{"", SpriteStyleOfficialArtwork, true},
		{"official", SpriteStyleOfficialArtwork, true},
		{"Official Artwork", SpriteStyleOfficialArtwork, true},
		{" HOME ", SpriteStyleHome, true},
		{"Home Style", SpriteStyleHome, true},
		{"game", SpriteStyleGame, true},
		{"pixel", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSpriteStyle(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSpriteStyle(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
