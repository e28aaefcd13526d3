package dialogue

// Config controls the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget per generated turn.
	MaxTokens int

	// Per-turn temperatures. The peer should sound loose and human, the
	// teacher precise, the summary near-deterministic.
	QuestionTemperature float64
	PeerTemperature     float64
	TeacherTemperature  float64
	SummaryTemperature  float64
}

// DefaultConfig returns the recommended per-turn settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           512,
		QuestionTemperature: 0.7,
		PeerTemperature:     0.7,
		TeacherTemperature:  0.2,
		SummaryTemperature:  0.1,
	}
}
