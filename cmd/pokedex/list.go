package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

var (
	listOffset int
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Pokémon page by page",
	Example: `  pokedex list
  pokedex list --offset 20 --limit 20
  pokedex list --limit 1302 --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Index of the first entry")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size (0 uses catalog.default_page_size); 1302 or more reads the cached catalog")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	if listOffset < 0 {
		return domain.NewValidationError("offset", "must be a non-negative integer")
	}
	if listLimit < 0 {
		return domain.NewValidationError("limit", "must be a non-negative integer")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	px, _, err := openPokedex(ctx, cmd)
	if err != nil {
		return err
	}
	defer px.Close()

	page, err := px.Service.GetList(ctx, listOffset, listLimit)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, toListOutput(page.Count, page.Results))
}
