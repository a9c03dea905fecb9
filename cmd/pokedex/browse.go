package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
	"github.com/heartmarshall/pokedex-pocket/internal/viewstate"
)

const browseRows = 15

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively filter the catalog",
	Long: `Browse loads the whole catalog, then reads search text one line at a
time. Each line replaces the search text; results appear once typing
settles for viewstate.search_debounce.

Commands:
  :r    reload the catalog
  :retry  retry after an error
  :q    quit (Ctrl-D works too)`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// No interrupt handler: Ctrl-C must end a blocked read.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	px, cfg, err := openPokedex(ctx, cmd)
	if err != nil {
		return err
	}
	defer px.Close()

	state := viewstate.NewListState(px.Service, viewstate.WithDebounce(cfg.ViewState.SearchDebounce))
	defer state.Close()

	out := &screen{w: cmd.OutOrStdout()}
	state.OnChange(out.draw)
	state.LoadInitial(ctx)

	lines := bufio.NewScanner(cmd.InOrStdin())
	for lines.Scan() {
		switch text := lines.Text(); strings.TrimSpace(text) {
		case ":q":
			return nil
		case ":r":
			state.Refresh(ctx)
		case ":retry":
			state.Retry(ctx)
		default:
			state.SetSearchText(ctx, text)
		}
	}
	return lines.Err()
}

// screen prints list snapshots, skipping ones that would look the same.
type screen struct {
	mu   sync.Mutex
	w    io.Writer
	last string
}

func (s *screen) draw(snap viewstate.ListSnapshot) {
	frame := renderFrame(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	if frame == s.last {
		return
	}
	s.last = frame
	fmt.Fprint(s.w, frame)
}

func renderFrame(snap viewstate.ListSnapshot) string {
	var b strings.Builder
	switch {
	case snap.IsLoading:
		b.WriteString("loading catalog...\n")
	case snap.Err != nil:
		fmt.Fprintf(&b, "error: %v (type :retry)\n", snap.Err)
	case snap.IsSearching:
		fmt.Fprintf(&b, "searching %q...\n", snap.SearchText)
	default:
		writeRows(&b, snap.Items)
		if snap.SearchText != "" {
			fmt.Fprintf(&b, "%d match %q\n", len(snap.Items), snap.SearchText)
		} else {
			fmt.Fprintf(&b, "%d Pokémon\n", len(snap.Items))
		}
	}
	return b.String()
}

func writeRows(b *strings.Builder, items []domain.ListItem) {
	for i, it := range items {
		if i == browseRows {
			fmt.Fprintf(b, "  ... %d more\n", len(items)-browseRows)
			return
		}
		fmt.Fprintf(b, "  %s  %s\n", it.DisplayNumber(), it.DisplayName())
	}
}
