package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

// SessionUseCase drives one conversation turn at a time. Turn history is
// kept in process memory only and trimmed to a fixed number of exchanges.
type SessionUseCase interface {
	// ProcessTurn generates the assistant reply for one user utterance.
	ProcessTurn(ctx context.Context, sessionID, userID, text string) (string, error)

	// EndSession drops the in-memory state for a finished call.
	EndSession(sessionID string)
}

type sessionUseCase struct {
	agent    repository.AIAgent
	commerce CommerceUseCase
	tools    repository.ToolDispatcher
	maxTurns int

	mu       sync.Mutex
	sessions map[string]*entity.Session
}

// NewSessionUseCase builds the session use case.
func NewSessionUseCase(agent repository.AIAgent, commerce CommerceUseCase, tools repository.ToolDispatcher, maxTurns int) SessionUseCase {
	return &sessionUseCase{
		agent:    agent,
		commerce: commerce,
		tools:    tools,
		maxTurns: maxTurns,
		sessions: make(map[string]*entity.Session),
	}
}

// ProcessTurn generates the assistant reply for one user utterance.
func (u *sessionUseCase) ProcessTurn(ctx context.Context, sessionID, userID, text string) (string, error) {
	if sessionID == "" || text == "" {
		return "", fmt.Errorf("session id and text are required")
	}

	// Keep a slow model call from hanging the turn forever.
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	session, history := u.prepareTurn(ctx, sessionID, userID)

	reply, err := u.agent.GenerateReply(ctx, history, text, u.tools)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	u.recordTurn(session, entity.Turn{UserText: text, Reply: reply, Timestamp: time.Now()})
	return reply, nil
}

// prepareTurn fetches or creates the session and snapshots its history.
// The session context is built once, at session start.
func (u *sessionUseCase) prepareTurn(ctx context.Context, sessionID, userID string) (*entity.Session, []string) {
	u.mu.Lock()
	session, exists := u.sessions[sessionID]
	u.mu.Unlock()

	if !exists {
		// Context building hits the store; do it outside the lock.
		sessionContext := u.commerce.BuildSessionContext(ctx, userID)
		u.mu.Lock()
		if session = u.sessions[sessionID]; session == nil {
			session = &entity.Session{
				SessionID: sessionID,
				UserID:    userID,
				Context:   sessionContext,
			}
			u.sessions[sessionID] = session
		}
		u.mu.Unlock()
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	history := make([]string, 0, 2*len(session.Turns)+2)
	history = append(history,
		fmt.Sprintf("Session context for this call:\n%s", session.Context),
		"Understood. I have the caller's profile and wishlist.")
	for _, turn := range session.Turns {
		history = append(history, turn.UserText, turn.Reply)
	}
	return session, history
}

func (u *sessionUseCase) recordTurn(session *entity.Session, turn entity.Turn) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session.Turns = append(session.Turns, turn)
	session.LastUsed = turn.Timestamp
	if len(session.Turns) > u.maxTurns {
		session.Turns = session.Turns[len(session.Turns)-u.maxTurns:]
	}
}

// EndSession drops the in-memory state for a finished call.
func (u *sessionUseCase) EndSession(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.sessions, sessionID)
}
