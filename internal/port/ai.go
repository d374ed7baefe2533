package port

import "context"

// AIProvider abstracts the generative-AI backend used for insights.
// Implementations can target Ollama, OpenAI, or any compatible chat API.
type AIProvider interface {
	// ModelName returns the identifier of the model being used.
	ModelName() string

	// Chat sends a system + user prompt and returns the complete response.
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
