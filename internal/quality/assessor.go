package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// Deterministic scoring weights. The assessment starts at 1.0 and each
// detected flaw subtracts its weight; the result is clamped to [0, 1].
const (
	penaltyShortQuestion    = 0.2
	penaltyShortExplanation = 0.1
	penaltySimilarOptions   = 0.1
	penaltyUngrounded       = 0.3

	minQuestionChars    = 10
	minExplanationChars = 20

	// Two options sharing more than this fraction of their word sets are
	// considered near-duplicates.
	similarityLimit = 0.8

	// Words shorter than this are ignored when checking that the question
	// is grounded in the source text.
	minContentWordLen = 4
)

var wordPattern = regexp.MustCompile(`[a-zA-Z0-9]+`)

// Assessment is the outcome of scoring one question.
type Assessment struct {
	// Score is on a 0-1 scale, 1.0 meaning no flaws detected.
	Score float64

	// Issues lists every detected flaw in human-readable form, suitable
	// for embedding in an improvement prompt.
	Issues []string
}

// Assessor scores questions with deterministic heuristics. It makes no
// model calls and the same inputs always produce the same assessment.
// The zero value is ready to use.
type Assessor struct{}

// Assess scores q against the source text it was generated from.
func (Assessor) Assess(q quizgen.QuestionDraft, sourceText string) Assessment {
	score := 1.0
	var issues []string

	if len(strings.TrimSpace(q.Question)) < minQuestionChars {
		score -= penaltyShortQuestion
		issues = append(issues, "question text too short")
	}

	if len(strings.TrimSpace(q.Explanation)) < minExplanationChars {
		score -= penaltyShortExplanation
		issues = append(issues, "explanation too brief to justify the answer")
	}

	optionWords := make([]map[string]struct{}, len(q.Options))
	for i, opt := range q.Options {
		optionWords[i] = wordSet(opt)
	}
	for i := 0; i < len(q.Options); i++ {
		for j := i + 1; j < len(q.Options); j++ {
			if similarity(optionWords[i], optionWords[j]) > similarityLimit {
				score -= penaltySimilarOptions
				issues = append(issues, fmt.Sprintf("options %d and %d are too similar", i+1, j+1))
			}
		}
	}

	if !grounded(q.Question, sourceText) {
		score -= penaltyUngrounded
		issues = append(issues, "question does not appear grounded in the source text")
	}

	if score < 0 {
		score = 0
	}
	return Assessment{Score: score, Issues: issues}
}

// wordSet tokenizes s into a lowercase word set.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(strings.ToLower(s), -1) {
		set[w] = struct{}{}
	}
	return set
}

// similarity is the overlap ratio |a ∩ b| / min(|a|, |b|).
func similarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := 0
	for w := range small {
		if _, ok := large[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}

// grounded reports whether at least one content word from the question
// occurs in the source text.
func grounded(question, sourceText string) bool {
	source := strings.ToLower(sourceText)
	for w := range wordSet(question) {
		if len(w) >= minContentWordLen && strings.Contains(source, w) {
			return true
		}
	}
	return false
}
