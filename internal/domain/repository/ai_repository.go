package repository

import "context"

// ToolDispatcher executes one named tool call coming back from the model.
// The result is always a string the model can read; tool failures are
// reported inside the string, never as an error.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, name string, args map[string]any) string
}

// AIAgent generates assistant replies, invoking tools through the
// dispatcher as the model requests them.
type AIAgent interface {
	// GenerateReply produces the next assistant reply for the given user
	// text. history carries prior exchanges as alternating user/assistant
	// text pairs, oldest first.
	GenerateReply(ctx context.Context, history []string, userText string, tools ToolDispatcher) (string, error)
}
