package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablecheck-cli/internal/history"
)

var (
	histDataset string
	histLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.History(histDataset, histLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No stored analyses")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-30s  score %3d  %dx%d  dup %d  missing %.1f%%\n",
				e.AnalyzedAt.Format("2006-01-02 15:04"), e.Dataset, e.Score,
				e.Rows, e.Columns, e.Duplicates, e.MissingPct)
		}
		return nil
	},
}

var historyScoresCmd = &cobra.Command{
	Use:   "scores <dataset>",
	Short: "Show the score evolution of one dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		points, err := store.ScoreEvolution(args[0])
		if err != nil {
			return err
		}
		if len(points) == 0 {
			fmt.Printf("No stored analyses for %s\n", args[0])
			return nil
		}
		for _, p := range points {
			fmt.Printf("%s  %d\n", p.AnalyzedAt.Format("2006-01-02 15:04"), p.Score)
		}
		return nil
	},
}

func openHistory() (*history.Store, error) {
	if cfg == nil || cfg.HistoryDB == "" {
		return nil, fmt.Errorf("no history database configured")
	}
	return history.Open(cfg.HistoryDB)
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyScoresCmd)
	historyCmd.Flags().StringVar(&histDataset, "dataset", "", "filter by dataset file name")
	historyCmd.Flags().IntVar(&histLimit, "limit", 20, "maximum entries to list")
}
