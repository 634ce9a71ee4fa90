package llm

import "context"

// ChatModel is the chat-completion capability used by the remote resume analyzer.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ModelName() string
}
