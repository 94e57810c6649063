package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

// Bound on tool-call rounds within a single reply, so a confused model
// cannot loop forever.
const maxToolRounds = 5

type geminiAgent struct {
	client *genai.Client
	model  *genai.GenerativeModel
	sem    chan struct{}
	mu     sync.Mutex
	last   time.Time
	delay  time.Duration
}

// NewAgent creates a Gemini-backed agent with the given system
// instructions and tool declarations.
func NewAgent(apiKey, modelName, instructions string, tools []*genai.Tool) (repository.AIAgent, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Low temperature keeps product names and prices out of the model's
	// imagination.
	model.SetTemperature(0.3)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(1024)
	model.Tools = tools
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instructions)},
	}

	return &geminiAgent{
		client: client,
		model:  model,
		sem:    make(chan struct{}, 3), // at most 3 in-flight requests
		delay:  350 * time.Millisecond, // minimal interval between requests
	}, nil
}

// GenerateReply runs one conversation turn, executing tool calls the
// model requests until it produces plain text.
func (g *geminiAgent) GenerateReply(ctx context.Context, history []string, userText string, tools repository.ToolDispatcher) (string, error) {
	release := g.acquire()
	defer release()

	chat := g.model.StartChat()
	chat.History = buildHistory(history)

	resp, err := chat.SendMessage(ctx, genai.Text(userText))
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		responses := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			result := tools.Dispatch(ctx, call.Name, call.Args)
			responses = append(responses, genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"content": result},
			})
		}

		resp, err = chat.SendMessage(ctx, responses...)
		if err != nil {
			return "", fmt.Errorf("failed to send tool results: %w", err)
		}
	}

	reply := extractText(resp)
	if reply == "" {
		return "", fmt.Errorf("no response candidates")
	}
	return reply, nil
}

// buildHistory converts alternating user/assistant texts into chat turns.
func buildHistory(history []string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for i, text := range history {
		role := "user"
		if i%2 == 1 {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(text)},
		})
	}
	return contents
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if call, ok := part.(genai.FunctionCall); ok {
				calls = append(calls, call)
			}
		}
	}
	return calls
}

func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				result.WriteString(string(text))
			}
		}
	}
	return result.String()
}

// acquire enforces the request semaphore and minimal spacing between
// model calls.
func (g *geminiAgent) acquire() func() {
	g.sem <- struct{}{}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if !g.last.IsZero() {
		if sleep := g.delay - now.Sub(g.last); sleep > 0 {
			time.Sleep(sleep)
			now = time.Now()
		}
	}
	g.last = now

	return func() {
		<-g.sem
	}
}

// Close releases the underlying client.
func (g *geminiAgent) Close() error {
	return g.client.Close()
}
