package triviagen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAskedQuestions is the maximum number of already-asked questions
	// to include in the prompt for deduplication.
	MaxAskedQuestions int

	// UseSchema switches the generator from labeled-text replies to
	// structured JSON output validated against TriviaSchema.
	UseSchema bool
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         256,
		Temperature:       0.8,
		MaxAskedQuestions: 20,
	}
}
