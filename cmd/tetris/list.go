package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	// Calculate column widths
	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Description")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, g.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tetris play <id>' to play a game.")
}
