package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer accuracy and feedback ratings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		stats, err := s.QuestionAccuracy(ctx, 20)
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
		} else {
			fmt.Println("Hardest Questions")
			fmt.Println(strings.Repeat("─", 80))
			fmt.Printf("%-50s  %8s  %8s\n", "Question", "Answers", "Correct")
			fmt.Println(strings.Repeat("─", 80))
			for _, qs := range stats {
				fmt.Printf("%-50s  %8d  %7.0f%%\n",
					truncate(qs.Question, 50), qs.Answers, qs.Accuracy()*100)
			}
		}

		avg, err := s.FeedbackAverages(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		if avg.Entries == 0 {
			fmt.Println("No feedback recorded yet.")
			return nil
		}
		fmt.Printf("Feedback (%d entries)\n", avg.Entries)
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Avg difficulty:  %.1f / 5\n", avg.AvgDifficulty)
		fmt.Printf("Avg relevance:   %.1f / 5\n", avg.AvgRelevance)
		fmt.Printf("Avg quality:     %.1f / 5\n", avg.AvgQuality)
		return nil
	},
}
