package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

func newDisconnectedClient() *Client {
	return NewClient("user", "pass", "cluster.example.net", "Techladder", slog.New(slog.DiscardHandler))
}

func TestDisconnectIsIdempotent(t *testing.T) {
	client := newDisconnectedClient()
	ctx := context.Background()

	require.NoError(t, client.Disconnect(ctx))
	require.NoError(t, client.Disconnect(ctx))
}

func TestOperationsBeforeConnect(t *testing.T) {
	client := newDisconnectedClient()
	ctx := context.Background()

	_, err := client.InsertMany(ctx, "products", []any{entity.Product{ProductID: "P1"}})
	assert.True(t, errors.Is(err, repository.ErrNotConnected))

	var products []entity.Product
	err = client.Find(ctx, "products", map[string]any{}, &products)
	assert.True(t, errors.Is(err, repository.ErrNotConnected))

	var product entity.Product
	err = client.FindOne(ctx, "products", map[string]any{"product_id": "P1"}, &product)
	assert.True(t, errors.Is(err, repository.ErrNotConnected))

	_, err = client.UpdateOne(ctx, "users", map[string]any{}, map[string]any{})
	assert.True(t, errors.Is(err, repository.ErrNotConnected))
}

func TestWishlistCollectionName(t *testing.T) {
	assert.Equal(t, "user_001_wishlist", wishlistCollection("user_001"))
}
