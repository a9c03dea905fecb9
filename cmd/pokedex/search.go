package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find Pokémon whose name contains the query",
	Long: `Search matches the query against names case-insensitively, in Pokédex
order. The first search downloads the whole catalog; later ones read it
from the cache.`,
	Example: `  pokedex search pika
  pokedex search "mr" --format yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	items, err := px.Service.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, toListOutput(len(items), items))
}
