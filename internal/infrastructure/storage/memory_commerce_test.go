package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

func TestWishlistIsolationPerUser(t *testing.T) {
	repo := NewMemoryCommerceRepository()
	ctx := context.Background()

	_, err := repo.AddToWishlist(ctx, "u1", []entity.WishlistItem{{ProductID: "P1", QuantityDesired: 1}})
	require.NoError(t, err)

	other, err := repo.GetWishlist(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other, "one user's wishlist must not leak into another's")

	mine, err := repo.GetWishlist(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestWishlistStampsAddedDate(t *testing.T) {
	repo := NewMemoryCommerceRepository()
	ctx := context.Background()

	_, err := repo.AddToWishlist(ctx, "u1", []entity.WishlistItem{{ProductID: "P1"}})
	require.NoError(t, err)

	items, err := repo.GetWishlist(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].AddedDate.IsZero())
}

func TestGetUserProfileNotFound(t *testing.T) {
	repo := NewMemoryCommerceRepository()

	_, err := repo.GetUserProfile(context.Background(), "ghost")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestUpdateUserProfilePartialMerge(t *testing.T) {
	repo := NewMemoryCommerceRepository()
	ctx := context.Background()

	_, err := repo.CreateUserProfile(ctx, entity.UserProfile{UserID: "u1", Name: "Priya", Location: "Delhi"})
	require.NoError(t, err)

	modified, err := repo.UpdateUserProfile(ctx, "u1", map[string]any{"location": "Mumbai"})
	require.NoError(t, err)
	assert.True(t, modified)

	profile, err := repo.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", profile.Location)
	assert.Equal(t, "Priya", profile.Name, "unnamed fields must not change")
	assert.False(t, profile.UpdatedAt.IsZero(), "update timestamp must be stamped")
}

func TestUpdateUserProfileNoMatch(t *testing.T) {
	repo := NewMemoryCommerceRepository()

	modified, err := repo.UpdateUserProfile(context.Background(), "ghost", map[string]any{"name": "X"})
	require.NoError(t, err, "a missing user is reported, not an error")
	assert.False(t, modified)
}

func TestProductFilterMatching(t *testing.T) {
	repo := NewMemoryCommerceRepository()
	ctx := context.Background()

	_, err := repo.SaveProducts(ctx, []entity.Product{
		{ProductID: "P1", Category: "Bites", Price: 199, InStock: true},
		{ProductID: "P2", Category: "Bites", Price: 499, InStock: true},
		{ProductID: "P3", Category: "Spreads", Price: 150, InStock: true},
		{ProductID: "P4", Category: "Bites", Price: 100, InStock: false},
	})
	require.NoError(t, err)

	inStock := true
	maxPrice := 300.0
	got, err := repo.ListProductsByFilter(ctx, entity.ProductFilter{
		InStock:  &inStock,
		Category: "Bites",
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].ProductID)
}

func TestCreateOrderStampsTimestamp(t *testing.T) {
	repo := NewMemoryCommerceRepository()

	id, err := repo.CreateOrder(context.Background(), entity.Order{
		UserID: "u1",
		Items:  []entity.OrderItem{{ProductID: "P1", Quantity: 1}},
		Status: entity.OrderStatusPending,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
