package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/swipemath/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show best score and recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setupEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		repo := e.eventRepo()

		st, err := repo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if st.Games == 0 {
			fmt.Println("No games played yet.")
			return nil
		}

		fmt.Printf("Games:          %d\n", st.Games)
		fmt.Printf("Best score:     %d\n", st.BestScore)
		fmt.Printf("Total score:    %d\n", st.TotalScore)
		fmt.Printf("Accuracy:       %.0f%% (%d/%d)\n", st.Accuracy()*100, st.Correct, st.Answered)
		fmt.Printf("Best streak:    %d\n", st.BestStreak)
		fmt.Printf("Highest level:  %d\n", st.HighestLevel)

		games, err := repo.RecentGames(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query games: %w", err)
		}

		fmt.Println()
		fmt.Printf("%-19s  %6s  %8s  %8s  %6s  %7s\n",
			"Date", "Score", "Answered", "Accuracy", "Streak", "Level")
		fmt.Println(strings.Repeat("─", 64))
		for _, g := range games {
			fmt.Printf("%-19s  %6d  %8d  %7.0f%%  %6d  %3d/%-3d\n",
				g.Timestamp.Local().Format("2006-01-02 15:04:05"),
				g.Score,
				g.Answered,
				g.Accuracy()*100,
				g.BestStreak,
				g.FinalLevel,
				g.HighestLevel,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent games to show")
}
