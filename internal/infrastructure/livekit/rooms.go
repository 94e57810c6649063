package livekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoomServiceClient calls the LiveKit RoomService over its twirp JSON
// endpoint. Only room listing is needed here.
type RoomServiceClient struct {
	baseURL string
	issuer  *TokenIssuer
	http    *http.Client
}

// NewRoomServiceClient builds a room service client for the LiveKit host.
// The host may be given as a ws/wss URL; it is rewritten to http/https.
func NewRoomServiceClient(host string, issuer *TokenIssuer) *RoomServiceClient {
	return &RoomServiceClient{
		baseURL: httpBaseURL(host),
		issuer:  issuer,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func httpBaseURL(host string) string {
	switch {
	case strings.HasPrefix(host, "ws://"):
		return "http://" + strings.TrimPrefix(host, "ws://")
	case strings.HasPrefix(host, "wss://"):
		return "https://" + strings.TrimPrefix(host, "wss://")
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return host
	default:
		return "https://" + host
	}
}

type listRoomsResponse struct {
	Rooms []struct {
		Name string `json:"name"`
	} `json:"rooms"`
}

// ListRooms returns the names of the currently active rooms.
func (c *RoomServiceClient) ListRooms(ctx context.Context) ([]string, error) {
	token, err := c.issuer.serviceToken(&VideoGrant{RoomList: true})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/twirp/livekit.RoomService/ListRooms"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list rooms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list rooms returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed listRoomsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode list rooms response: %w", err)
	}

	names := make([]string, 0, len(parsed.Rooms))
	for _, room := range parsed.Rooms {
		names = append(names, room.Name)
	}
	return names, nil
}

// GenerateRoomName picks a room name that does not collide with any
// currently active room.
func (c *RoomServiceClient) GenerateRoomName(ctx context.Context) (string, error) {
	active, err := c.ListRooms(ctx)
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(active))
	for _, name := range active {
		taken[name] = true
	}

	name := randomRoomName()
	for taken[name] {
		name = randomRoomName()
	}
	return name, nil
}

func randomRoomName() string {
	return "room-" + uuid.NewString()[:8]
}
