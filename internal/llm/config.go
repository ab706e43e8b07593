// Package llm provides centralized LLM configuration and client abstractions
// for text generation, structured JSON output and embeddings.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: extraction, basic estimation
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured parsing
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: narrative generation
	TierAdvanced ModelTier = "advanced"
)

// EmbeddingDim is the declared dimensionality of the embedding capability.
// Degraded-mode zero vectors use this dimensionality so a corpus indexed
// without credentials still answers queries without crashing.
const EmbeddingDim = 768

// Config holds the model configuration for the application
type Config struct {
	Models         map[ModelTier]string
	EmbeddingModel string
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		EmbeddingModel: "text-embedding-004",
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
