package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

// OutputFormat selects how command results are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want text, json or yaml)", s)
	}
}

// listRow is the printed shape of a catalog entry.
type listRow struct {
	Number string `json:"number" yaml:"number"`
	Name   string `json:"name"   yaml:"name"`
	URL    string `json:"url"    yaml:"url"`
}

type listOutput struct {
	Count   int       `json:"count"   yaml:"count"`
	Results []listRow `json:"results" yaml:"results"`
}

type statRow struct {
	Name  string `json:"name"  yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type detailOutput struct {
	ID          int       `json:"id"           yaml:"id"`
	Number      string    `json:"number"       yaml:"number"`
	Name        string    `json:"name"         yaml:"name"`
	Types       []string  `json:"types"        yaml:"types"`
	HeightM     float64   `json:"height_m"     yaml:"height_m"`
	WeightKg    float64   `json:"weight_kg"    yaml:"weight_kg"`
	BaseExp     int       `json:"base_exp"     yaml:"base_exp"`
	Abilities   []string  `json:"abilities"    yaml:"abilities"`
	Stats       []statRow `json:"stats"        yaml:"stats"`
	Image       string    `json:"image"        yaml:"image"`
	AllImages   []string  `json:"all_images"   yaml:"all_images"`
	Cry         string    `json:"cry,omitempty" yaml:"cry,omitempty"`
	MoveCount   int       `json:"move_count"   yaml:"move_count"`
	PrimaryType string    `json:"primary_type" yaml:"primary_type"`
}

func toListOutput(count int, items []domain.ListItem) listOutput {
	rows := make([]listRow, 0, len(items))
	for _, it := range items {
		p := it.Summary()
		rows = append(rows, listRow{Number: p.DisplayNumber(), Name: p.DisplayName(), URL: p.URL})
	}
	return listOutput{Count: count, Results: rows}
}

// toDetailOutput flattens d for printing. shiny and front pick the image.
func toDetailOutput(d domain.PokemonDetail, shiny, front bool) detailOutput {
	out := detailOutput{
		ID:          d.ID,
		Number:      d.DisplayNumber(),
		Name:        d.DisplayName(),
		HeightM:     d.HeightInMeters(),
		WeightKg:    d.WeightInKilograms(),
		BaseExp:     d.BaseExperience,
		Image:       d.Sprites.Current(shiny, front),
		AllImages:   d.Sprites.AllNonEmptyImages(),
		MoveCount:   len(d.Moves),
		PrimaryType: d.PrimaryType(),
		Types:       make([]string, 0, len(d.Types)),
		Abilities:   make([]string, 0, len(d.Abilities)),
		Stats:       make([]statRow, 0, len(d.Stats)),
	}
	for _, t := range d.Types {
		out.Types = append(out.Types, t.Name)
	}
	for _, a := range d.Abilities {
		name := a.DisplayName()
		if a.IsHidden {
			name += " (hidden)"
		}
		out.Abilities = append(out.Abilities, name)
	}
	for _, s := range d.Stats {
		out.Stats = append(out.Stats, statRow{Name: s.DisplayName(), Value: s.Value})
	}
	if d.Cries != nil {
		if cry := d.Cries.PrimaryCry(); cry != nil {
			out.Cry = *cry
		}
	}
	return out
}

// render writes v in the requested format. Text output is a table for
// listOutput and a card for detailOutput.
func render(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	switch out := v.(type) {
	case listOutput:
		return renderListText(w, out)
	case detailOutput:
		return renderDetailText(w, out)
	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}

func renderListText(w io.Writer, out listOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range out.Results {
		fmt.Fprintf(tw, "%s\t%s\n", r.Number, r.Name)
	}
	fmt.Fprintf(tw, "\n%d of %d\n", len(out.Results), out.Count)
	return tw.Flush()
}

const statBarWidth = 20

func renderDetailText(w io.Writer, d detailOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s %s\n", d.Number, d.Name)
	fmt.Fprintf(tw, "Types\t%s\n", strings.Join(d.Types, ", "))
	fmt.Fprintf(tw, "Height\t%.1f m\n", d.HeightM)
	fmt.Fprintf(tw, "Weight\t%.1f kg\n", d.WeightKg)
	fmt.Fprintf(tw, "Base exp\t%d\n", d.BaseExp)
	fmt.Fprintf(tw, "Abilities\t%s\n", strings.Join(d.Abilities, ", "))
	fmt.Fprintf(tw, "Moves\t%d\n", d.MoveCount)
	for _, s := range d.Stats {
		filled := int(domain.StatValue{Value: s.Value}.Fraction() * statBarWidth)
		fmt.Fprintf(tw, "%s\t%3d %s\n", s.Name, s.Value, strings.Repeat("█", filled)+strings.Repeat("░", statBarWidth-filled))
	}
	if d.Image != "" {
		fmt.Fprintf(tw, "Image\t%s\n", d.Image)
	}
	if len(d.AllImages) > 1 {
		fmt.Fprintf(tw, "All images\t%s\n", strings.Join(d.AllImages, " "))
	}
	if d.Cry != "" {
		fmt.Fprintf(tw, "Cry\t%s\n", d.Cry)
	}
	return tw.Flush()
}
