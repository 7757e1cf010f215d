package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/feedback"
	"github.com/abhisek/quizforge/internal/quality"
	"github.com/abhisek/quizforge/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate quiz questions from a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		depth, _ := cmd.Flags().GetFloat64("depth")
		noImprove, _ := cmd.Flags().GetBool("no-improve")

		d := quizgen.Difficulty(difficulty)
		if !d.Valid() {
			return fmt.Errorf("invalid difficulty %q (want easy, medium or hard)", difficulty)
		}

		res, err := extract.Extract(args[0])
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		// Accumulated feedback steers future batches: the stored depth
		// level backs both the depth parameter and the default
		// difficulty unless flags override them.
		level, err := s.DepthLevel(ctx)
		if err != nil {
			return err
		}
		adapter := feedback.NewAdapterWithLevel(nil, level)
		if !cmd.Flags().Changed("depth") {
			depth = level
		}
		if !cmd.Flags().Changed("difficulty") {
			d = adapter.SuggestedDifficulty()
		}

		provider, err := buildProvider(ctx, s)
		if err != nil {
			return err
		}

		genCfg := quizgen.DefaultConfig()
		generator := quizgen.NewGenerator(provider, genCfg)

		fmt.Printf("Generating %d %s questions from %s (depth %.1f)...\n",
			count, d, filepath.Base(args[0]), depth)
		questions, err := generator.Generate(ctx, quizgen.GenerationRequest{
			SourceText: res.Text,
			Count:      count,
			Difficulty: d,
			DepthLevel: depth,
		})
		if err != nil {
			return err
		}

		var improver *quality.Improver
		if !noImprove {
			improver = quality.NewImprover(provider, genCfg)
		}
		checker := quality.NewChecker(improver, quality.DefaultConfig())
		questions, err = checker.Check(ctx, questions, res.Text)
		if err != nil {
			return err
		}

		saved, err := s.SaveQuestions(ctx, filepath.Base(args[0]), d, questions)
		if err != nil {
			return err
		}

		fmt.Printf("\nSaved %d questions.\n\n", len(saved))
		for i, q := range saved {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				marker := " "
				if j == q.CorrectIndex {
					marker = "*"
				}
				fmt.Printf("   %s %c. %s\n", marker, 'A'+j, opt)
			}
			fmt.Printf("   Quality: %.2f", q.QualityScore)
			if len(q.Issues) > 0 {
				fmt.Printf("  (%s)", strings.Join(q.Issues, "; "))
			}
			fmt.Printf("\n   ID: %s\n\n", q.ID)
		}

		// A shallow batch nudges the stored depth level upward for the
		// next invocation.
		classifier := feedback.NewClassifier(provider)
		depthScore, derr := classifier.RateDepth(ctx, questions)
		if derr != nil {
			depthScore = feedback.HeuristicDepth(questions)
		}
		adapter.RecordLowQuality(depthScore)
		if adapter.DepthLevel() != level {
			if err := s.SaveDepthLevel(ctx, adapter.DepthLevel()); err != nil {
				return err
			}
			fmt.Printf("Batch depth %.1f is below target; raising the depth level to %.1f for future batches.\n",
				depthScore, adapter.DepthLevel())
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("count", 5, "Number of questions to generate")
	generateCmd.Flags().String("difficulty", "medium", "Question difficulty: easy, medium or hard")
	generateCmd.Flags().Float64("depth", 0, "Cognitive depth level 1.0-3.0 (default: learned from feedback)")
	generateCmd.Flags().Bool("no-improve", false, "Skip the automatic improvement pass for low-quality questions")
}
