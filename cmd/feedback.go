package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/feedback"
	"github.com/abhisek/quizforge/internal/store"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record learner feedback and adapt future question depth",
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID, _ := cmd.Flags().GetString("question")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		relevance, _ := cmd.Flags().GetInt("relevance")
		qualityRating, _ := cmd.Flags().GetInt("quality")
		comment, _ := cmd.Flags().GetString("comment")

		if difficulty == 0 && relevance == 0 && qualityRating == 0 && comment == "" {
			return fmt.Errorf("nothing to record: pass at least one rating or --comment")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		id, err := s.SaveFeedback(ctx, store.Feedback{
			QuestionID:       questionID,
			DifficultyRating: difficulty,
			RelevanceRating:  relevance,
			QualityRating:    qualityRating,
			Comment:          comment,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded feedback #%d.\n", id)

		if comment == "" {
			return nil
		}

		// Interpret the comment. A missing LLM configuration is fine;
		// keyword heuristics carry the classification.
		var classifier *feedback.Classifier
		if provider, perr := buildProvider(ctx, s); perr == nil {
			classifier = feedback.NewClassifier(provider)
		}

		// The depth level persists across invocations so accumulated
		// feedback steers future generate runs.
		level, err := s.DepthLevel(ctx)
		if err != nil {
			return err
		}
		adapter := feedback.NewAdapterWithLevel(classifier, level)
		result := adapter.ProcessFeedback(ctx, comment)
		if err := s.SaveDepthLevel(ctx, adapter.DepthLevel()); err != nil {
			return err
		}

		fmt.Printf("Analysis: %s (%s)\n", result.Analysis, result.Reasoning)
		if result.DepthAdjustment != 0 {
			fmt.Printf("Depth adjustment: %+.1f\n", result.DepthAdjustment)
		}
		fmt.Printf("Depth level is now %.1f.\n", adapter.DepthLevel())
		fmt.Printf("Suggested difficulty for the next batch: %s\n", adapter.SuggestedDifficulty())
		return nil
	},
}

func init() {
	feedbackCmd.Flags().String("question", "", "Question ID this feedback refers to")
	feedbackCmd.Flags().Int("difficulty", 0, "Difficulty rating 1-5")
	feedbackCmd.Flags().Int("relevance", 0, "Relevance rating 1-5")
	feedbackCmd.Flags().Int("quality", 0, "Quality rating 1-5")
	feedbackCmd.Flags().String("comment", "", "Free-text feedback")
}
