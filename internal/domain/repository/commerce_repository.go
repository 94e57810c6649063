package repository

import (
	"context"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
)

// CommerceRepository is the typed data access layer for products, users,
// orders, feedback and per-user wishlists.
//
// Wishlists are logically isolated per user: items added for one user are
// never visible through another user's id. The Mongo implementation keeps
// the historical one-collection-per-user layout; other backends only have
// to preserve the isolation.
type CommerceRepository interface {
	// ListProducts returns the whole catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// ListProductsByFilter returns catalog entries matching the filter.
	ListProductsByFilter(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)

	// SaveProducts bulk-loads catalog entries and returns the new record ids.
	SaveProducts(ctx context.Context, products []entity.Product) ([]string, error)

	// GetUserProfile looks a profile up by its external user_id field.
	// Returns ErrNotFound when no profile matches.
	GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	// CreateUserProfile persists a new profile, stamping created_at when
	// unset, and returns the new record id.
	CreateUserProfile(ctx context.Context, profile entity.UserProfile) (string, error)

	// UpdateUserProfile applies a partial merge of the named fields and
	// stamps updated_at. Reports false without error when no user matched.
	UpdateUserProfile(ctx context.Context, userID string, fields map[string]any) (bool, error)

	// GetWishlist returns the user's wishlist. A user with no wishlist
	// yet gets an empty slice, not an error.
	GetWishlist(ctx context.Context, userID string) ([]entity.WishlistItem, error)

	// AddToWishlist appends items to the user's wishlist and returns the
	// new record ids.
	AddToWishlist(ctx context.Context, userID string, items []entity.WishlistItem) ([]string, error)

	// CreateOrder persists an order, stamping created_at when unset, and
	// returns the new order id.
	CreateOrder(ctx context.Context, order entity.Order) (string, error)

	// AddFeedback persists a review, stamping created_at when unset, and
	// returns the new feedback id.
	AddFeedback(ctx context.Context, feedback entity.Feedback) (string, error)
}
