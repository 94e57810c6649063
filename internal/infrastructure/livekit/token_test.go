package livekit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseToken(t *testing.T, signed, secret string) (jwt.MapClaims, error) {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	return claims, err
}

func TestRoomJoinTokenClaims(t *testing.T) {
	issuer := NewTokenIssuer("api-key", "api-secret")

	meta := ParticipantMetadata{UserID: "u1", Email: "priya@example.com", Number: "+91-9876543210"}
	signed, err := issuer.RoomJoinToken("u1", "Priya", meta, "room-abc123")
	require.NoError(t, err)

	claims, err := parseToken(t, signed, "api-secret")
	require.NoError(t, err)

	assert.Equal(t, "api-key", claims["iss"])
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, "Priya", claims["name"])

	video, ok := claims["video"].(map[string]any)
	require.True(t, ok, "video grant must be present")
	assert.Equal(t, true, video["roomJoin"])
	assert.Equal(t, "room-abc123", video["room"])

	var parsedMeta ParticipantMetadata
	require.NoError(t, json.Unmarshal([]byte(claims["metadata"].(string)), &parsedMeta))
	assert.Equal(t, meta, parsedMeta)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), exp.Time, time.Minute)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("api-key", "api-secret")

	signed, err := issuer.RoomJoinToken("u1", "Priya", ParticipantMetadata{UserID: "u1"}, "room-x")
	require.NoError(t, err)

	_, err = parseToken(t, signed, "wrong-secret")
	assert.Error(t, err)
}
