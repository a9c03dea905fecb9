package pokemon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/provider/pokeapi"
	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

func detailClient(resp pokeapi.DetailResponse) *mockClient {
	return &mockClient{
		GetFunc: func(_ context.Context, _ pokeapi.Endpoint, out any) error {
			*out.(*pokeapi.DetailResponse) = resp
			return nil
		},
	}
}

func TestDetailRepository_GetByID(t *testing.T) {
	t.Parallel()

	art := "https://img/art/6.png"
	client := detailClient(pokeapi.DetailResponse{
		ID:   6,
		Name: "charizard",
		Sprites: pokeapi.SpritesResponse{
			Other: &pokeapi.OtherSpritesResponse{OfficialArtwork: &pokeapi.OfficialArtworkResponse{FrontDefault: &art}},
		},
		Species: pokeapi.NamedResource{Name: "charizard"},
	})
	repo := NewDetailRepository(testLogger(), client)

	d, err := repo.GetByID(context.Background(), 6)

	require.NoError(t, err)
	assert.Equal(t, 6, d.ID)
	assert.Equal(t, art, d.ImageURL)
	assert.Equal(t, 0, d.BaseExperience)
	assert.Equal(t, "detail", client.calls[0].Kind())
}

func TestDetailRepository_GetByURL(t *testing.T) {
	t.Parallel()

	client := detailClient(pokeapi.DetailResponse{ID: 25, Name: "pikachu"})
	repo := NewDetailRepository(testLogger(), client)

	const url = "https://pokeapi.co/api/v2/pokemon/25/"
	d, err := repo.GetByURL(context.Background(), url)

	require.NoError(t, err)
	assert.Equal(t, "pikachu", d.Name)
	assert.Equal(t, "detail_url", client.calls[0].Kind())

	resolved, err := client.calls[0].Resolve("http://unused")
	require.NoError(t, err)
	assert.Equal(t, url, resolved)
}

func TestDetailRepository_ErrorsPropagate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		is   error
	}{
		{"server", &domain.ServerError{StatusCode: 404}, domain.ErrServer},
		{"decoding", &domain.DecodingError{Cause: assert.AnError}, domain.ErrDecoding},
		{"invalid url", domain.ErrInvalidURL, domain.ErrInvalidURL},
		{"no data", domain.ErrNoData, domain.ErrNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := &mockClient{GetFunc: func(context.Context, pokeapi.Endpoint, any) error { return tt.err }}

			_, err := NewDetailRepository(testLogger(), client).GetByID(context.Background(), 1)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}
