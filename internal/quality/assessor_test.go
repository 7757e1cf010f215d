package quality

import (
	"math"
	"strings"
	"testing"

	"github.com/abhisek/quizforge/internal/quizgen"
)

const source = `Photosynthesis converts light energy into chemical energy. Chlorophyll in
the chloroplasts absorbs sunlight, splitting water molecules and fixing carbon dioxide
into glucose while releasing oxygen as a byproduct.`

func goodQuestion() quizgen.QuestionDraft {
	return quizgen.QuestionDraft{
		Question:     "What pigment absorbs sunlight during photosynthesis?",
		Options:      []string{"Chlorophyll", "Hemoglobin", "Keratin", "Melanin"},
		CorrectIndex: 0,
		Explanation:  "Chlorophyll in the chloroplasts captures light energy that drives the reaction.",
	}
}

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestAssessCleanQuestion(t *testing.T) {
	a := Assessor{}.Assess(goodQuestion(), source)
	approx(t, a.Score, 1.0)
	if len(a.Issues) != 0 {
		t.Errorf("unexpected issues: %v", a.Issues)
	}
}

func TestAssessShortQuestion(t *testing.T) {
	q := goodQuestion()
	q.Question = "Glucose?"
	a := Assessor{}.Assess(q, source)
	approx(t, a.Score, 0.8)
	if len(a.Issues) != 1 || !strings.Contains(a.Issues[0], "too short") {
		t.Errorf("expected a short-question issue, got %v", a.Issues)
	}
}

func TestAssessShortExplanation(t *testing.T) {
	q := goodQuestion()
	q.Explanation = "Because."
	a := Assessor{}.Assess(q, source)
	approx(t, a.Score, 0.9)
}

func TestAssessSimilarOptions(t *testing.T) {
	q := goodQuestion()
	q.Options = []string{
		"the green pigment chlorophyll",
		"the green pigment chlorophyll molecule",
		"Keratin",
		"Melanin",
	}
	a := Assessor{}.Assess(q, source)
	approx(t, a.Score, 0.9)
	if len(a.Issues) != 1 || !strings.Contains(a.Issues[0], "too similar") {
		t.Errorf("expected a similarity issue, got %v", a.Issues)
	}
}

func TestAssessEachSimilarPairPenalized(t *testing.T) {
	q := goodQuestion()
	q.Options = []string{
		"splitting water molecules",
		"splitting water molecules apart",
		"water molecules splitting",
		"Melanin",
	}
	a := Assessor{}.Assess(q, source)
	// Pairs (1,2), (1,3) and (2,3) all overlap fully.
	approx(t, a.Score, 0.7)
	if len(a.Issues) != 3 {
		t.Errorf("expected 3 similarity issues, got %v", a.Issues)
	}
}

func TestAssessUngroundedQuestion(t *testing.T) {
	q := goodQuestion()
	q.Question = "Which empire built aqueducts across Europe?"
	a := Assessor{}.Assess(q, source)
	approx(t, a.Score, 0.7)
	if len(a.Issues) != 1 || !strings.Contains(a.Issues[0], "grounded") {
		t.Errorf("expected a grounding issue, got %v", a.Issues)
	}
}

func TestAssessScoreFloorsAtZero(t *testing.T) {
	q := quizgen.QuestionDraft{
		Question:     "Why?",
		Options:      []string{"same words here", "same words here", "same words here", "same words here"},
		CorrectIndex: 0,
		Explanation:  "Short.",
	}
	a := Assessor{}.Assess(q, source)
	if a.Score < 0 {
		t.Errorf("score must not go negative, got %v", a.Score)
	}
	approx(t, a.Score, 0.0)
}

func TestAssessDeterministic(t *testing.T) {
	q := goodQuestion()
	q.Explanation = "Short."
	first := Assessor{}.Assess(q, source)
	for range 10 {
		again := Assessor{}.Assess(q, source)
		if again.Score != first.Score || len(again.Issues) != len(first.Issues) {
			t.Fatalf("assessment not deterministic: %v vs %v", again, first)
		}
	}
}

func TestSimilarityIgnoresCaseAndPunctuation(t *testing.T) {
	a := wordSet("The Water Cycle!")
	b := wordSet("water cycle, the")
	if got := similarity(a, b); got != 1.0 {
		t.Errorf("similarity = %v, want 1.0", got)
	}
}
