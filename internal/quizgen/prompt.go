package quizgen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const generationSystemPrompt = `You are an assessment designer creating multiple-choice quiz questions from presentation material.

Rules:
- Every question must be directly answerable from the provided text. Do not invent facts.
- Each question has exactly 4 options and exactly one correct answer.
- All distractors must be plausible to someone who skimmed the material, not random values.
- Provide a detailed explanation for each question that justifies the correct answer.
- Respond with a JSON array of question objects and nothing else: no prose, no markdown, no code fences.
- Each object has the fields "question", "options" (array of 4 strings), "correct_option" (integer 0-3 for A-D) and "explanation".`

// difficultyDescriptions maps each level to the phrase embedded in prompts.
var difficultyDescriptions = map[Difficulty]string{
	DifficultyEasy:   "basic concepts and directly stated facts, suitable for first-time learners",
	DifficultyMedium: "moderate difficulty requiring understanding of concepts and applying them",
	DifficultyHard:   "high difficulty requiring deep understanding and analysis",
}

// buildGenerationUserMessage renders the user message for a generation call.
// The source text must already be truncated by the caller.
func buildGenerationUserMessage(text string, count int, difficulty Difficulty, depth float64) string {
	desc, ok := difficultyDescriptions[difficulty]
	if !ok {
		difficulty = DifficultyMedium
		desc = difficultyDescriptions[DifficultyMedium]
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d multiple-choice questions with 4 options each.\n", count)
	fmt.Fprintf(&b, "Difficulty: %s (%s)\n", difficulty, desc)
	if depth > 0 {
		fmt.Fprintf(&b, "Depth level: %.1f (1 = basic recall, 3 = advanced reasoning)\n", depth)
	}

	b.WriteString("\nSource text:\n")
	b.WriteString(text)

	b.WriteString("\n\nOutput schema example:\n")
	b.WriteString(`[{"question": "...", "options": ["...", "...", "...", "..."], "correct_option": 0, "explanation": "..."}]`)

	return b.String()
}

// ImprovementSystemPrompt is the system prompt for single-question
// revision calls.
const ImprovementSystemPrompt = `You are an assessment designer revising a flawed multiple-choice quiz question.

Rules:
- Address every listed issue while preserving the question's core intent.
- Keep exactly 4 options with exactly one correct answer and a detailed explanation.
- Stay grounded in the provided source excerpt.
- Respond with a single JSON object in the fields "question", "options", "correct_option" (integer 0-3) and "explanation". No prose, no code fences.`

// BuildImprovementUserMessage renders the user message for an improvement
// call, embedding the original question, a bounded source excerpt and the
// concrete issue list.
func BuildImprovementUserMessage(q QuestionDraft, sourceText string, issues []string, maxExcerpt int) string {
	excerpt := sourceText
	if len(excerpt) > maxExcerpt {
		excerpt = truncateChars(excerpt, maxExcerpt) + "..."
	}

	var b strings.Builder

	b.WriteString("Issues to fix: ")
	b.WriteString(strings.Join(issues, "; "))
	b.WriteString("\n\nSource excerpt:\n")
	b.WriteString(excerpt)

	b.WriteString("\n\nQuestion to improve:\n")
	fmt.Fprintf(&b, "Question: %s\n", q.Question)
	for i, opt := range q.Options {
		if i > 3 {
			break
		}
		fmt.Fprintf(&b, "%c. %s\n", 'A'+i, opt)
	}
	if q.CorrectIndex >= 0 && q.CorrectIndex <= 3 {
		fmt.Fprintf(&b, "Correct answer: %c\n", 'A'+q.CorrectIndex)
	}
	fmt.Fprintf(&b, "Explanation: %s\n", q.Explanation)

	return b.String()
}

// truncateChars cuts s to at most n bytes without splitting a rune.
func truncateChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	// Back off to the last complete rune boundary.
	for i := 0; i < 3 && len(cut) > 0; i++ {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size != 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}
