package main

import (
	"fmt"

	"github.com/automoto/floe/storage"
	"github.com/spf13/cobra"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  floe scores
  floe scores --limit 20
  floe scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'floe play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-10s  %s\n", "Rank", "Name", "Score", "Coins", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-10s  %s\n", "----", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %-5d  %-10s  %s\n",
			i+1, e.Name, e.Score, e.Coins, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
