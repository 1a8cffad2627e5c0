package compare

import "fmt"

// Config carries the noise-filtering thresholds and segmentation options for
// one comparison. Treat a Config as an immutable snapshot for the lifetime of
// a Compare call.
type Config struct {
	// MinDiffTokens ignores edits smaller than this many changed tokens.
	MinDiffTokens int
	// MinEqualRatio treats pairs at or above this similarity as unchanged.
	MinEqualRatio float64
	// SpelledOutHeaders also accepts "SECTION"/"Section" headers.
	SpelledOutHeaders bool
	// MaxSectionMatches bounds the numbered-section strategy.
	MaxSectionMatches int
}

// DefaultConfig is the served application's noise policy.
func DefaultConfig() Config {
	return Config{
		MinDiffTokens:     80,
		MinEqualRatio:     0.777,
		MaxSectionMatches: 800,
	}
}

// StrictConfig is the tighter policy used by the static builder: smaller
// edits register, and more near-identical pairs count as modified.
func StrictConfig() Config {
	return Config{
		MinDiffTokens:     50,
		MinEqualRatio:     0.677,
		MaxSectionMatches: 400,
	}
}

// Validate rejects unusable thresholds. This is the only error the engine
// surfaces; it is checked eagerly, before any processing.
func (c Config) Validate() error {
	if c.MinDiffTokens < 0 {
		return fmt.Errorf("min diff tokens must be >= 0, got %d", c.MinDiffTokens)
	}
	if c.MinEqualRatio < 0 || c.MinEqualRatio > 1 {
		return fmt.Errorf("min equal ratio must be in [0,1], got %v", c.MinEqualRatio)
	}
	if c.MaxSectionMatches < 0 {
		return fmt.Errorf("max section matches must be >= 0, got %d", c.MaxSectionMatches)
	}
	return nil
}
