package quizgen

import "fmt"

// Validate runs the structural checks on a draft, in order: field
// presence, option count, answer index range. The first failing check
// determines the rejection reason. A nil return means the draft is
// structurally sound.
func Validate(d QuestionDraft) *ValidationError {
	if d.Question == "" || d.Explanation == "" || d.Options == nil || d.CorrectIndex == missingIndex {
		return &ValidationError{
			Reason:  ReasonMissingField,
			Message: "question, options, correct_option and explanation are all required",
		}
	}
	if len(d.Options) != 4 {
		return &ValidationError{
			Reason:  ReasonWrongOptionCount,
			Message: fmt.Sprintf("expected exactly 4 options, got %d", len(d.Options)),
		}
	}
	if d.CorrectIndex < 0 || d.CorrectIndex > 3 {
		return &ValidationError{
			Reason:  ReasonInvalidAnswerIndex,
			Message: fmt.Sprintf("correct_option must be in [0,3], got %d", d.CorrectIndex),
		}
	}
	return nil
}
