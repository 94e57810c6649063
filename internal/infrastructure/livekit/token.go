// Package livekit covers the thin slice of the LiveKit server API this
// service needs: signed room-join tokens and active-room listing for
// collision-free room names. Session transport itself is LiveKit's job.
package livekit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued room token stays valid.
const DefaultTokenTTL = 6 * time.Hour

// VideoGrant is the LiveKit video permission claim.
type VideoGrant struct {
	RoomJoin bool   `json:"roomJoin,omitempty"`
	RoomList bool   `json:"roomList,omitempty"`
	Room     string `json:"room,omitempty"`
}

// ParticipantMetadata travels opaquely inside the token and comes back to
// the agent when the participant joins.
type ParticipantMetadata struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Number string `json:"number,omitempty"`
}

type accessClaims struct {
	jwt.RegisteredClaims
	Video    *VideoGrant `json:"video,omitempty"`
	Name     string      `json:"name,omitempty"`
	Metadata string      `json:"metadata,omitempty"`
}

// TokenIssuer signs LiveKit access tokens with the API key pair.
type TokenIssuer struct {
	apiKey    string
	apiSecret string
}

// NewTokenIssuer builds a token issuer.
func NewTokenIssuer(apiKey, apiSecret string) *TokenIssuer {
	return &TokenIssuer{apiKey: apiKey, apiSecret: apiSecret}
}

// RoomJoinToken issues a token letting identity join the given room,
// carrying the display name and participant metadata.
func (t *TokenIssuer) RoomJoinToken(identity, name string, meta ParticipantMetadata, room string) (string, error) {
	metadata, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode participant metadata: %w", err)
	}
	return t.sign(identity, name, string(metadata), &VideoGrant{RoomJoin: true, Room: room})
}

// serviceToken issues a short-lived token for server-to-server calls.
func (t *TokenIssuer) serviceToken(grant *VideoGrant) (string, error) {
	return t.sign(t.apiKey, "", "", grant)
}

func (t *TokenIssuer) sign(identity, name, metadata string, grant *VideoGrant) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.apiKey,
			Subject:   identity,
			ID:        identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(DefaultTokenTTL)),
		},
		Video:    grant,
		Name:     name,
		Metadata: metadata,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.apiSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
