package pokeapi

import "github.com/heartmarshall/pokedex-pocket/internal/domain"

// unknownLearnMethod is used for moves without any version-group detail.
const unknownLearnMethod = "unknown"

// MapList converts a list envelope into a domain ListPage.
func MapList(r ListResponse) domain.ListPage {
	items := make([]domain.ListItem, 0, len(r.Results))
	for _, it := range r.Results {
		items = append(items, domain.NewListItem(it.Name, it.URL))
	}

	return domain.ListPage{
		Count:    r.Count,
		Next:     r.Next,
		Previous: r.Previous,
		Results:  items,
	}
}

// MapDetail converts a detail envelope into a domain PokemonDetail.
// Missing optional data is replaced with defaults; it never fails.
func MapDetail(r DetailResponse) domain.PokemonDetail {
	sprites := mapSprites(r.Sprites)

	imageURL := ""
	switch {
	case sprites.OfficialArtwork != nil:
		imageURL = *sprites.OfficialArtwork
	case r.Sprites.FrontDefault != nil:
		imageURL = *r.Sprites.FrontDefault
	}

	baseExperience := 0
	if r.BaseExperience != nil {
		baseExperience = *r.BaseExperience
	}

	var cries *domain.CrySet
	if r.Cries != nil {
		cries = &domain.CrySet{Latest: r.Cries.Latest, Legacy: r.Cries.Legacy}
	}

	return domain.PokemonDetail{
		ID:             r.ID,
		Name:           r.Name,
		Height:         r.Height,
		Weight:         r.Weight,
		BaseExperience: baseExperience,
		Order:          r.Order,
		Types:          mapTypes(r.Types),
		Stats:          mapStats(r.Stats),
		Abilities:      mapAbilities(r.Abilities),
		Moves:          mapMoves(r.Moves),
		ImageURL:       imageURL,
		Sprites:        sprites,
		Cries:          cries,
		Species:        r.Species.Name,
	}
}

func mapTypes(slots []TypeSlotResponse) []domain.TypeInfo {
	out := make([]domain.TypeInfo, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.TypeInfo{Name: s.Type.Name})
	}
	return out
}

func mapStats(stats []StatResponse) []domain.StatValue {
	out := make([]domain.StatValue, 0, len(stats))
	for _, s := range stats {
		out = append(out, domain.StatValue{Name: s.Stat.Name, Value: s.BaseStat})
	}
	return out
}

func mapAbilities(slots []AbilitySlotResponse) []domain.AbilityInfo {
	out := make([]domain.AbilityInfo, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.AbilityInfo{Name: s.Ability.Name, IsHidden: s.IsHidden})
	}
	return out
}

// mapMoves takes the learn method and level from the first version group only.
func mapMoves(slots []MoveSlotResponse) []domain.MoveInfo {
	out := make([]domain.MoveInfo, 0, len(slots))
	for _, s := range slots {
		mv := domain.MoveInfo{Name: s.Move.Name, LearnMethod: unknownLearnMethod}
		if len(s.VersionGroupDetails) > 0 {
			first := s.VersionGroupDetails[0]
			mv.LearnMethod = first.MoveLearnMethod.Name
			mv.Level = first.LevelLearnedAt
		}
		out = append(out, mv)
	}
	return out
}

func mapSprites(s SpritesResponse) domain.SpriteSet {
	set := domain.SpriteSet{
		FrontDefault: s.FrontDefault,
		FrontShiny:   s.FrontShiny,
		BackDefault:  s.BackDefault,
		BackShiny:    s.BackShiny,
	}

	if s.Other == nil {
		return set
	}
	if art := s.Other.OfficialArtwork; art != nil {
		set.OfficialArtwork = art.FrontDefault
		set.OfficialArtworkShiny = art.FrontShiny
	}
	if dw := s.Other.DreamWorld; dw != nil {
		set.DreamWorld = dw.FrontDefault
	}
	if home := s.Other.Home; home != nil {
		set.Home = home.FrontDefault
		set.HomeShiny = home.FrontShiny
	}
	return set
}
