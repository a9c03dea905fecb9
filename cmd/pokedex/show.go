package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
	"github.com/heartmarshall/pokedex-pocket/internal/service/pokedex"
)

var showCmd = &cobra.Command{
	Use:   "show <id|url>",
	Short: "Show one Pokémon in detail",
	Example: `  pokedex show 25
  pokedex show https://pokeapi.co/api/v2/pokemon/6/
  pokedex show 6 --shiny --back`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	showShiny bool
	showBack  bool
)

func init() {
	showCmd.Flags().BoolVar(&showShiny, "shiny", false, "Show the shiny image")
	showCmd.Flags().BoolVar(&showBack, "back", false, "Show the rear-facing image")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	px, _, err := openPokedex(ctx, cmd)
	if err != nil {
		return err
	}
	defer px.Close()

	d, err := fetchDetail(ctx, px.Service, args[0])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, toDetailOutput(d, showShiny, !showBack))
}

// fetchDetail treats a bare integer as an id and anything else as a
// resource URL.
func fetchDetail(ctx context.Context, svc *pokedex.Service, ref string) (domain.PokemonDetail, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		if id <= 0 {
			return domain.PokemonDetail{}, domain.NewValidationError("id", "must be a positive integer")
		}
		return svc.GetDetailByID(ctx, id)
	}
	return svc.GetDetailByURL(ctx, ref)
}
