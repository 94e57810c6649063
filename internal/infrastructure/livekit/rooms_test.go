package livekit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubRoomServer(t *testing.T, names ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/twirp/livekit.RoomService/ListRooms", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))

		w.Header().Set("Content-Type", "application/json")
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, `{"name":"`+name+`"}`)
		}
		_, _ = w.Write([]byte(`{"rooms":[` + strings.Join(parts, ",") + `]}`))
	}))
}

func TestListRooms(t *testing.T) {
	server := newStubRoomServer(t, "room-aaaa1111", "room-bbbb2222")
	defer server.Close()

	client := NewRoomServiceClient(server.URL, NewTokenIssuer("key", "secret"))
	rooms, err := client.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"room-aaaa1111", "room-bbbb2222"}, rooms)
}

func TestGenerateRoomNameAvoidsActiveRooms(t *testing.T) {
	server := newStubRoomServer(t, "room-aaaa1111")
	defer server.Close()

	client := NewRoomServiceClient(server.URL, NewTokenIssuer("key", "secret"))
	name, err := client.GenerateRoomName(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "room-"))
	assert.NotEqual(t, "room-aaaa1111", name)
}

func TestListRoomsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRoomServiceClient(server.URL, NewTokenIssuer("key", "secret"))
	_, err := client.ListRooms(context.Background())
	assert.Error(t, err)
}

func TestHTTPBaseURL(t *testing.T) {
	assert.Equal(t, "https://lk.example.com", httpBaseURL("wss://lk.example.com"))
	assert.Equal(t, "http://localhost:7880", httpBaseURL("ws://localhost:7880"))
	assert.Equal(t, "https://lk.example.com", httpBaseURL("lk.example.com"))
	assert.Equal(t, "http://localhost:7880", httpBaseURL("http://localhost:7880"))
}
