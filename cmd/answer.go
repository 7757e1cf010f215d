package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer <question-id> <A-D>",
	Short: "Answer a stored question and record the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := parseOptionLetter(args[1])
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		q, err := s.GetQuestion(ctx, args[0])
		if err != nil {
			return err
		}
		if selected >= len(q.Options) {
			return fmt.Errorf("question has only %d options", len(q.Options))
		}

		correct := selected == q.CorrectIndex
		if err := s.RecordResponse(ctx, q.ID, selected, correct); err != nil {
			return err
		}

		fmt.Println(q.Question)
		for j, opt := range q.Options {
			marker := " "
			if j == selected {
				marker = ">"
			}
			fmt.Printf("  %s %c. %s\n", marker, 'A'+j, opt)
		}
		fmt.Println()
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Incorrect. The answer is %c.\n", 'A'+q.CorrectIndex)
		}
		fmt.Println(q.Explanation)
		return nil
	},
}

// parseOptionLetter converts an answer like "A", "b" or "2" to an
// option index.
func parseOptionLetter(s string) (int, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) == 1 {
		switch {
		case s[0] >= 'A' && s[0] <= 'D':
			return int(s[0] - 'A'), nil
		case s[0] >= '0' && s[0] <= '3':
			return int(s[0] - '0'), nil
		}
	}
	return 0, fmt.Errorf("invalid answer %q (want A-D)", s)
}
