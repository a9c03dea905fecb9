package domain

// PokemonDetail is the full record for one species form. Two details are the
// same Pokémon when their IDs match; see Equal.
type PokemonDetail struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"` // decimetres
	Weight int    `json:"weight"` // hectograms

	BaseExperience int  `json:"base_experience"`
	Order          *int `json:"order"`

	Types     []TypeInfo    `json:"types"`
	Stats     []StatValue   `json:"stats"`
	Abilities []AbilityInfo `json:"abilities"`
	Moves     []MoveInfo    `json:"moves"`

	ImageURL string    `json:"image_url"`
	Sprites  SpriteSet `json:"sprites"`
	Cries    *CrySet   `json:"cries"`
	Species  string    `json:"species"`
}

// Equal compares by ID only. List UIs diff on identity, so a refreshed record
// with changed fields must still be treated as the same row.
func (d PokemonDetail) Equal(other PokemonDetail) bool {
	return d.ID == other.ID
}

func (d PokemonDetail) DisplayName() string   { return Capitalize(d.Name) }
func (d PokemonDetail) DisplayNumber() string { return FormatNumber(d.ID) }

// HeightInMeters converts Height from decimetres.
func (d PokemonDetail) HeightInMeters() float64 { return float64(d.Height) / 10 }

// WeightInKilograms converts Weight from hectograms.
func (d PokemonDetail) WeightInKilograms() float64 { return float64(d.Weight) / 10 }

// PrimaryType is the name of the first listed type, or "Unknown".
func (d PokemonDetail) PrimaryType() string {
	if len(d.Types) == 0 {
		return "Unknown"
	}
	return d.Types[0].Name
}

// CrySet holds the audio URLs for a species' cry.
type CrySet struct {
	Latest *string `json:"latest"`
	Legacy *string `json:"legacy"`
}

// PrimaryCry prefers the latest recording over the legacy one.
func (c CrySet) PrimaryCry() *string {
	return firstNonNil(c.Latest, c.Legacy)
}
