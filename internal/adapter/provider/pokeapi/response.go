package pokeapi

import (
	"encoding/json"
	"fmt"
)

// Wire models for the PokéAPI v2 endpoints used by this service. Nullable
// fields are pointers without omitempty so a null survives an encode/decode
// round trip unchanged.

// ListResponse is the envelope returned by GET /pokemon.
type ListResponse struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []ListItemResponse `json:"results"`
}

func (ListResponse) requiredKeys() []string {
	return []string{"count", "results"}
}

// ListItemResponse is a named resource reference inside a list page.
type ListItemResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (r *ListItemResponse) UnmarshalJSON(data []byte) error {
	type plain ListItemResponse
	return decodeRequired(data, (*plain)(r), "list item", "name", "url")
}

// DetailResponse is the envelope returned by GET /pokemon/{id}.
type DetailResponse struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	Height         int                   `json:"height"`
	Weight         int                   `json:"weight"`
	BaseExperience *int                  `json:"base_experience"`
	Order          *int                  `json:"order"`
	Types          []TypeSlotResponse    `json:"types"`
	Stats          []StatResponse        `json:"stats"`
	Abilities      []AbilitySlotResponse `json:"abilities"`
	Sprites        SpritesResponse       `json:"sprites"`
	Moves          []MoveSlotResponse    `json:"moves"`
	Cries          *CriesResponse        `json:"cries"`
	Species        NamedResource         `json:"species"`
}

func (DetailResponse) requiredKeys() []string {
	return []string{"id", "name", "height", "weight", "types", "stats", "abilities", "sprites", "moves", "species"}
}

// NamedResource is the {name, url} pair PokéAPI uses for every reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (r *NamedResource) UnmarshalJSON(data []byte) error {
	type plain NamedResource
	return decodeRequired(data, (*plain)(r), "resource", "name", "url")
}

type TypeSlotResponse struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

func (r *TypeSlotResponse) UnmarshalJSON(data []byte) error {
	type plain TypeSlotResponse
	return decodeRequired(data, (*plain)(r), "type slot", "slot", "type")
}

type StatResponse struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

func (r *StatResponse) UnmarshalJSON(data []byte) error {
	type plain StatResponse
	return decodeRequired(data, (*plain)(r), "stat", "base_stat", "effort", "stat")
}

type AbilitySlotResponse struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

func (r *AbilitySlotResponse) UnmarshalJSON(data []byte) error {
	type plain AbilitySlotResponse
	return decodeRequired(data, (*plain)(r), "ability slot", "ability", "is_hidden", "slot")
}

type MoveSlotResponse struct {
	Move                NamedResource              `json:"move"`
	VersionGroupDetails []MoveVersionGroupResponse `json:"version_group_details"`
}

func (r *MoveSlotResponse) UnmarshalJSON(data []byte) error {
	type plain MoveSlotResponse
	return decodeRequired(data, (*plain)(r), "move slot", "move", "version_group_details")
}

// MoveVersionGroupResponse describes how a move is learned in one game
// version group.
type MoveVersionGroupResponse struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

func (r *MoveVersionGroupResponse) UnmarshalJSON(data []byte) error {
	type plain MoveVersionGroupResponse
	return decodeRequired(data, (*plain)(r), "move version group",
		"level_learned_at", "move_learn_method", "version_group")
}

type CriesResponse struct {
	Latest *string `json:"latest"`
	Legacy *string `json:"legacy"`
}

// SpritesResponse holds the top-level sprite URLs plus the "other" artwork
// families. Per-generation sprites under "versions" are not decoded.
type SpritesResponse struct {
	BackDefault      *string               `json:"back_default"`
	BackFemale       *string               `json:"back_female"`
	BackShiny        *string               `json:"back_shiny"`
	BackShinyFemale  *string               `json:"back_shiny_female"`
	FrontDefault     *string               `json:"front_default"`
	FrontFemale      *string               `json:"front_female"`
	FrontShiny       *string               `json:"front_shiny"`
	FrontShinyFemale *string               `json:"front_shiny_female"`
	Other            *OtherSpritesResponse `json:"other"`
}

type OtherSpritesResponse struct {
	DreamWorld      *DreamWorldSpritesResponse `json:"dream_world"`
	Home            *HomeSpritesResponse       `json:"home"`
	OfficialArtwork *OfficialArtworkResponse   `json:"official-artwork"`
}

type DreamWorldSpritesResponse struct {
	FrontDefault *string `json:"front_default"`
	FrontFemale  *string `json:"front_female"`
}

type HomeSpritesResponse struct {
	FrontDefault     *string `json:"front_default"`
	FrontFemale      *string `json:"front_female"`
	FrontShiny       *string `json:"front_shiny"`
	FrontShinyFemale *string `json:"front_shiny_female"`
}

type OfficialArtworkResponse struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

// decodeRequired unmarshals the object in data into dst after checking that
// every key is present and not null. what names the object in errors.
func decodeRequired(data []byte, dst any, what string, keys ...string) error {
	if err := missingKey(data, keys); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return json.Unmarshal(data, dst)
}

func missingKey(data []byte, keys []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return fmt.Errorf("missing required key %q", key)
		}
	}
	return nil
}
