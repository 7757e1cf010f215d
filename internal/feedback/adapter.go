package feedback

import (
	"context"
	"sync"

	"github.com/abhisek/quizforge/internal/quizgen"
)

const (
	minDepth     = 1.0
	maxDepth     = 3.0
	defaultDepth = 1.0

	// Depth quality scores below this threshold nudge the level up.
	qualityThreshold = 2.5

	// qualityNudge is the upward step applied on a low depth score.
	qualityNudge = 0.5

	// maxAdjustment bounds a single feedback-driven depth change.
	maxAdjustment = 0.5

	// historyLimit caps the retained feedback entries.
	historyLimit = 100
)

// Entry is one recorded piece of learner feedback.
type Entry struct {
	Text       string
	Analysis   string
	Adjustment float64
}

// AnalysisResult is the interpreted meaning of one feedback message.
type AnalysisResult struct {
	// Analysis is a short label such as "too_easy", "too_hard" or "neutral".
	Analysis string

	// DepthAdjustment is the signed depth change, clamped to
	// [-maxAdjustment, maxAdjustment].
	DepthAdjustment float64

	// Reasoning explains the classification in one sentence.
	Reasoning string
}

// Adapter tracks the learner's depth level on a 1.0 to 3.0 scale and
// adjusts it from free-text feedback and depth quality signals. This
// scale is distinct from the 0-1 heuristic quality score attached to
// individual questions. Safe for concurrent use.
type Adapter struct {
	classifier *Classifier

	mu         sync.Mutex
	depthLevel float64
	history    []Entry
}

// NewAdapter builds an Adapter starting at the base depth level.
// A nil classifier restricts analysis to the keyword heuristics.
func NewAdapter(classifier *Classifier) *Adapter {
	return &Adapter{classifier: classifier, depthLevel: defaultDepth}
}

// NewAdapterWithLevel builds an Adapter restored to a previously saved
// depth level, clamped into the valid range. Non-positive levels fall
// back to the base level.
func NewAdapterWithLevel(classifier *Classifier, level float64) *Adapter {
	a := NewAdapter(classifier)
	if level > 0 {
		a.depthLevel = clampDepth(level)
	}
	return a
}

// DepthLevel returns the current depth level.
func (a *Adapter) DepthLevel() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.depthLevel
}

// ProcessFeedback interprets one feedback message and applies the
// resulting depth adjustment. The classifier's model call can fail
// without failing the caller; keyword heuristics take over.
func (a *Adapter) ProcessFeedback(ctx context.Context, text string) AnalysisResult {
	var result AnalysisResult
	if a.classifier != nil {
		if r, err := a.classifier.Classify(ctx, text); err == nil {
			result = r
		} else {
			result = heuristicClassify(text)
		}
	} else {
		result = heuristicClassify(text)
	}

	result.DepthAdjustment = clampAdjustment(result.DepthAdjustment)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.depthLevel = clampDepth(a.depthLevel + result.DepthAdjustment)
	a.record(Entry{Text: text, Analysis: result.Analysis, Adjustment: result.DepthAdjustment})

	return result
}

// RecordLowQuality nudges the depth level up when a batch's depth score
// falls below the quality threshold. Scores at or above the threshold
// leave the level unchanged.
func (a *Adapter) RecordLowQuality(depthScore float64) {
	if depthScore >= qualityThreshold {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.depthLevel = clampDepth(a.depthLevel + qualityNudge)
}

// SuggestedDifficulty maps the depth level onto a difficulty band.
func (a *Adapter) SuggestedDifficulty() quizgen.Difficulty {
	level := a.DepthLevel()
	switch {
	case level < 1.67:
		return quizgen.DifficultyEasy
	case level < 2.34:
		return quizgen.DifficultyMedium
	default:
		return quizgen.DifficultyHard
	}
}

// History returns a copy of the recorded feedback entries, oldest first.
func (a *Adapter) History() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Entry, len(a.history))
	copy(out, a.history)
	return out
}

// record appends an entry, evicting the oldest past the cap.
// Caller holds a.mu.
func (a *Adapter) record(e Entry) {
	a.history = append(a.history, e)
	if len(a.history) > historyLimit {
		a.history = a.history[len(a.history)-historyLimit:]
	}
}

func clampDepth(v float64) float64 {
	if v < minDepth {
		return minDepth
	}
	if v > maxDepth {
		return maxDepth
	}
	return v
}

func clampAdjustment(v float64) float64 {
	if v < -maxAdjustment {
		return -maxAdjustment
	}
	if v > maxAdjustment {
		return maxAdjustment
	}
	return v
}
