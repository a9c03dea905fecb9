package domain

import (
	"strconv"
	"strings"
)

// DefaultTypeColor is used for type names missing from the colour table.
const DefaultTypeColor = "#68A090"

// StatBarMax is the value a stat bar is scaled against on detail screens.
const StatBarMax = 200

var typeColors = map[string]string{
	"fire":     "#F08030",
	"water":    "#6890F0",
	"grass":    "#78C850",
	"electric": "#F8D030",
	"psychic":  "#F85888",
	"ice":      "#98D8D8",
	"dragon":   "#7038F8",
	"dark":     "#705848",
	"fairy":    "#EE99AC",
	"normal":   "#A8A878",
	"fighting": "#C03028",
	"poison":   "#A040A0",
	"ground":   "#E0C068",
	"flying":   "#A890F0",
	"bug":      "#A8B820",
	"rock":     "#B8A038",
	"ghost":    "#705898",
	"steel":    "#B8B8D0",
}

// Pokemon is the summary shape shown in list cells.
type Pokemon struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	URL      string      `json:"url"`
	ImageURL string      `json:"image_url"`
	Types    []TypeInfo  `json:"types"`
	Height   int         `json:"height"`
	Weight   int         `json:"weight"`
	Stats    []StatValue `json:"stats"`
}

func (p Pokemon) DisplayName() string   { return Capitalize(p.Name) }
func (p Pokemon) DisplayNumber() string { return FormatNumber(p.ID) }

// HeightInMeters converts the API height (decimetres).
func (p Pokemon) HeightInMeters() float64 { return float64(p.Height) / 10 }

// WeightInKilograms converts the API weight (hectograms).
func (p Pokemon) WeightInKilograms() float64 { return float64(p.Weight) / 10 }

// TypeInfo is one elemental type of a species.
type TypeInfo struct {
	Name string `json:"name"`
}

// Color returns the hex badge colour for the type, matched case-insensitively.
func (t TypeInfo) Color() string {
	if c, ok := typeColors[strings.ToLower(t.Name)]; ok {
		return c
	}
	return DefaultTypeColor
}

// StatValue is a base stat. Values are kept as delivered, including zero and
// negative numbers.
type StatValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (s StatValue) DisplayName() string { return Humanize(s.Name) }

// Fraction is Value relative to StatBarMax, clamped to [0, 1].
func (s StatValue) Fraction() float64 {
	f := float64(s.Value) / StatBarMax
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// AbilityInfo is an ability a species can have.
type AbilityInfo struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

func (a AbilityInfo) DisplayName() string { return Humanize(a.Name) }

// MoveInfo is a move together with how it is first learned.
type MoveInfo struct {
	Name        string `json:"name"`
	LearnMethod string `json:"learn_method"`
	Level       int    `json:"level"`
}

func (m MoveInfo) DisplayName() string { return Humanize(m.Name) }

// DisplayLearnMethod renders the learn method label shown next to a move.
func (m MoveInfo) DisplayLearnMethod() string {
	switch m.LearnMethod {
	case "level-up":
		return "Level " + strconv.Itoa(m.Level)
	case "machine":
		return "TM/TR"
	case "egg":
		return "Egg Move"
	case "tutor":
		return "Move Tutor"
	default:
		return Capitalize(m.LearnMethod)
	}
}
