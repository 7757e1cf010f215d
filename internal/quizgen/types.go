package quizgen

// Difficulty selects how demanding generated questions should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// QuestionDraft is a parsed multiple-choice question before structural
// validation. Once validated it is treated as immutable.
type QuestionDraft struct {
	// Question is the question text shown to the learner.
	Question string `json:"question"`

	// Options holds exactly 4 answer options.
	Options []string `json:"options"`

	// CorrectIndex is the index of the correct option (0-3, A-D).
	// The parser sets it to -1 when the model omitted the field, so the
	// validator can tell "missing" apart from an explicit 0.
	CorrectIndex int `json:"correct_option"`

	// Explanation is the worked rationale shown after answering.
	Explanation string `json:"explanation"`
}

// ValidatedQuestion is a draft that passed structural validation, plus the
// advisory quality assessment attached downstream. QualityScore is on the
// 0-1 heuristic scale and is not a hard gate; callers pick the repair
// threshold.
type ValidatedQuestion struct {
	QuestionDraft

	QualityScore float64  `json:"quality_score"`
	Issues       []string `json:"issues,omitempty"`
}

// GenerationRequest holds everything needed for one generation call.
// Ephemeral; constructed per call.
type GenerationRequest struct {
	// SourceText is the extracted content questions are drawn from.
	// Truncated to Config.MaxSourceChars before prompting.
	SourceText string

	// Count is the number of questions to request (>= 1).
	Count int

	// Difficulty is the requested difficulty level.
	Difficulty Difficulty

	// DepthLevel optionally biases cognitive depth (1.0 basic - 3.0
	// advanced), driven by accumulated feedback. Zero means unset.
	DepthLevel float64
}
