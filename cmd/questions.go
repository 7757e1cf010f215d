package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List recently generated questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		questions, err := s.ListQuestions(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			fmt.Println("No questions stored yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-8s  %-7s  %s\n",
			"ID", "Created", "Level", "Quality", "Question")
		fmt.Println(strings.Repeat("─", 110))
		for _, q := range questions {
			fmt.Printf("%-36s  %-19s  %-8s  %-7.2f  %s\n",
				q.ID,
				q.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				q.Difficulty,
				q.QualityScore,
				truncate(q.Question, 40),
			)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().Int("limit", 20, "Maximum number of questions to list")
}
