package quality

import "time"

// Config controls batch checking behavior.
type Config struct {
	// RepairThreshold is the score below which a question is sent for
	// improvement. Scores are on the assessor's 0-1 scale.
	RepairThreshold float64

	// BatchSize is how many questions are assessed per batch.
	BatchSize int

	// BatchDelay is the pause between batches, spacing out improvement
	// calls to the model.
	BatchDelay time.Duration
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		RepairThreshold: 0.7,
		BatchSize:       5,
		BatchDelay:      time.Second,
	}
}
