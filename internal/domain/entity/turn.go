package entity

import "time"

// Turn is one conversation exchange kept as in-process session history.
type Turn struct {
	UserText  string
	Reply     string
	Timestamp time.Time
}

// Session is the live conversation state for one room participant.
type Session struct {
	SessionID string
	UserID    string
	Context   string // profile + wishlist summary injected at session start
	Turns     []Turn
	LastUsed  time.Time
}
