package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-joy/internal/registry"
	"github.com/vovakirdan/bounce-joy/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows every registered game mode with its ID, best score and games played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Stats are optional; a missing database just leaves the columns blank
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-22s  %8s  %5s\n", maxIDLen, "ID", "Title", "Best", "Games")
	fmt.Printf("  %-*s  %-22s  %8s  %5s\n", maxIDLen, "--", "-----", "----", "-----")
	for _, g := range games {
		best, played := "-", "0"
		if st, ok := stats[g.ID]; ok {
			best = fmt.Sprintf("%d", st.HighScore)
			played = fmt.Sprintf("%d", st.GamesCount)
		}
		fmt.Printf("  %-*s  %-22s  %8s  %5s\n", maxIDLen, g.ID, g.Title, best, played)
	}

	fmt.Println()
	fmt.Println("Run 'bounce play <id>' to play a mode.")
}
