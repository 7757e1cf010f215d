package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleBatch() []quizgen.ValidatedQuestion {
	return []quizgen.ValidatedQuestion{
		{
			QuestionDraft: quizgen.QuestionDraft{
				Question:     "What drives evaporation in the water cycle?",
				Options:      []string{"Solar energy", "Wind", "Gravity", "Tides"},
				CorrectIndex: 0,
				Explanation:  "Solar energy heats surface water until it turns to vapor.",
			},
			QualityScore: 1.0,
		},
		{
			QuestionDraft: quizgen.QuestionDraft{
				Question:     "Where does precipitated water collect?",
				Options:      []string{"Clouds", "Rivers and aquifers", "The sun", "Nowhere"},
				CorrectIndex: 1,
				Explanation:  "Precipitation gathers in rivers, soil and underground aquifers.",
			},
			QualityScore: 0.6,
			Issues:       []string{"question does not appear grounded in the source text"},
		},
	}
}

func TestSaveAndGetQuestions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveQuestions(ctx, "lecture.md", quizgen.DifficultyMedium, sampleBatch())
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)
	assert.NotEqual(t, saved[0].ID, saved[1].ID)

	got, err := s.GetQuestion(ctx, saved[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Where does precipitated water collect?", got.Question)
	assert.Equal(t, []string{"Clouds", "Rivers and aquifers", "The sun", "Nowhere"}, got.Options)
	assert.Equal(t, 1, got.CorrectIndex)
	assert.InDelta(t, 0.6, got.QualityScore, 1e-9)
	assert.Equal(t, []string{"question does not appear grounded in the source text"}, got.Issues)
}

func TestGetQuestionNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetQuestion(context.Background(), "nope")
	assert.Error(t, err)
}

func TestListQuestions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.SaveQuestions(ctx, "lecture.md", quizgen.DifficultyEasy, sampleBatch())
	require.NoError(t, err)

	questions, err := s.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	questions, err = s.ListQuestions(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestResponsesAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveQuestions(ctx, "lecture.md", quizgen.DifficultyMedium, sampleBatch())
	require.NoError(t, err)

	id := saved[0].ID
	require.NoError(t, s.RecordResponse(ctx, id, 0, true))
	require.NoError(t, s.RecordResponse(ctx, id, 2, false))
	require.NoError(t, s.RecordResponse(ctx, id, 0, true))

	stats, err := s.QuestionAccuracy(ctx, 10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, id, stats[0].QuestionID)
	assert.Equal(t, 3, stats[0].Answers)
	assert.Equal(t, 2, stats[0].Correct)
	assert.InDelta(t, 2.0/3.0, stats[0].Accuracy(), 1e-9)
}

func TestSaveFeedbackValidatesRatings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.SaveFeedback(ctx, Feedback{DifficultyRating: 6})
	assert.Error(t, err)

	_, err = s.SaveFeedback(ctx, Feedback{QualityRating: -1})
	assert.Error(t, err)

	id, err := s.SaveFeedback(ctx, Feedback{DifficultyRating: 4, QualityRating: 5, Comment: "solid set"})
	require.NoError(t, err)
	assert.Positive(t, id)
}

func TestFeedbackAverages(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.SaveFeedback(ctx, Feedback{DifficultyRating: 2, RelevanceRating: 4, QualityRating: 4})
	require.NoError(t, err)
	_, err = s.SaveFeedback(ctx, Feedback{DifficultyRating: 4, Comment: "tougher please"})
	require.NoError(t, err)

	avg, err := s.FeedbackAverages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, avg.Entries)
	assert.InDelta(t, 3.0, avg.AvgDifficulty, 1e-9)
	assert.InDelta(t, 4.0, avg.AvgRelevance, 1e-9)
	assert.InDelta(t, 4.0, avg.AvgQuality, 1e-9)
}

func TestLLMEventSink(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// The store satisfies the logging decorator's sink contract.
	var _ llm.EventSink = s

	err := s.RecordLLMRequest(ctx, llm.RequestEvent{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "question-gen",
		InputTokens:  900,
		OutputTokens: 400,
		LatencyMs:    1200,
		Success:      true,
		RequestBody:  "[user]\nGenerate 2 questions",
		ResponseBody: `[{"question": "..."}]`,
	})
	require.NoError(t, err)

	err = s.RecordLLMRequest(ctx, llm.RequestEvent{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "question-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	require.NoError(t, err)

	events, err := s.ListLLMEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.False(t, events[0].Success)

	got, err := s.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "question-gen", got.Purpose)
	assert.Equal(t, 900, got.InputTokens)

	usage, err := s.LLMUsage(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, 2, usage[0].Requests)
	assert.Equal(t, 1, usage[0].Failures)
	assert.Equal(t, int64(900), usage[0].InputTokens)
}

func TestDepthLevelPersistence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	level, err := s.DepthLevel(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, level, 1e-9, "unset depth starts at the base level")

	require.NoError(t, s.SaveDepthLevel(ctx, 2.5))
	level, err = s.DepthLevel(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, level, 1e-9)

	require.NoError(t, s.SaveDepthLevel(ctx, 1.5))
	level, err = s.DepthLevel(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, level, 1e-9, "saving again overwrites the single row")
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	t.Setenv("QUIZFORGE_DB", "/tmp/custom.db")
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", p)

	t.Setenv("QUIZFORGE_DB", "")
	t.Setenv("XDG_DATA_HOME", "/data")
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/data/quizforge/quizforge.db", p)
}
