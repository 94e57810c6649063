package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

// Collection names. Wishlists keep the historical per-user physical
// collection layout of the original data set.
const (
	collProducts = "products"
	collUsers    = "users"
	collOrders   = "orders"
	collFeedback = "feedback"

	wishlistSuffix = "_wishlist"
)

type commerceRepository struct {
	client *Client
	logger *slog.Logger
}

// NewCommerceRepository builds the Mongo-backed commerce repository.
func NewCommerceRepository(client *Client, logger *slog.Logger) repository.CommerceRepository {
	return &commerceRepository{client: client, logger: logger}
}

func wishlistCollection(userID string) string {
	return userID + wishlistSuffix
}

// ListProducts returns the whole catalog.
func (r *commerceRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.client.Find(ctx, collProducts, bson.M{}, &products); err != nil {
		return nil, err
	}
	r.logger.Info("retrieved products", "count", len(products))
	return products, nil
}

// ListProductsByFilter returns catalog entries matching the filter.
func (r *commerceRepository) ListProductsByFilter(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	query := bson.M{}
	if filter.InStock != nil {
		query["in_stock"] = *filter.InStock
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MaxPrice != nil {
		query["price"] = bson.M{"$lte": *filter.MaxPrice}
	}

	var products []entity.Product
	if err := r.client.Find(ctx, collProducts, query, &products); err != nil {
		return nil, err
	}
	r.logger.Info("retrieved products matching filter", "count", len(products))
	return products, nil
}

// SaveProducts bulk-loads catalog entries.
func (r *commerceRepository) SaveProducts(ctx context.Context, products []entity.Product) ([]string, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("no products to save")
	}
	docs := make([]any, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	return r.client.InsertMany(ctx, collProducts, docs)
}

// GetUserProfile looks a profile up by its external user_id field.
func (r *commerceRepository) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.client.FindOne(ctx, collUsers, bson.M{"user_id": userID}, &profile); err != nil {
		return nil, err
	}
	r.logger.Info("retrieved user profile", "user_id", userID)
	return &profile, nil
}

// CreateUserProfile persists a new profile and returns the record id.
func (r *commerceRepository) CreateUserProfile(ctx context.Context, profile entity.UserProfile) (string, error) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	ids, err := r.client.InsertMany(ctx, collUsers, []any{profile})
	if err != nil {
		return "", err
	}
	r.logger.Info("created user profile", "user_id", profile.UserID, "id", ids[0])
	return ids[0], nil
}

// UpdateUserProfile applies a partial merge of the named fields and
// stamps updated_at. Reports false without error when no user matched.
func (r *commerceRepository) UpdateUserProfile(ctx context.Context, userID string, fields map[string]any) (bool, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	modified, err := r.client.UpdateOne(ctx, collUsers, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	if modified == 0 {
		r.logger.Warn("no user matched for update", "user_id", userID)
		return false, nil
	}
	r.logger.Info("updated user profile", "user_id", userID)
	return true, nil
}

// GetWishlist returns the user's wishlist.
func (r *commerceRepository) GetWishlist(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	var items []entity.WishlistItem
	if err := r.client.Find(ctx, wishlistCollection(userID), bson.M{}, &items); err != nil {
		return nil, err
	}
	r.logger.Info("retrieved wishlist", "user_id", userID, "count", len(items))
	return items, nil
}

// AddToWishlist appends items to the user's wishlist.
func (r *commerceRepository) AddToWishlist(ctx context.Context, userID string, items []entity.WishlistItem) ([]string, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no wishlist items to add")
	}
	docs := make([]any, 0, len(items))
	for _, item := range items {
		if item.AddedDate.IsZero() {
			item.AddedDate = time.Now().UTC()
		}
		docs = append(docs, item)
	}
	ids, err := r.client.InsertMany(ctx, wishlistCollection(userID), docs)
	if err != nil {
		return nil, err
	}
	r.logger.Info("added wishlist items", "user_id", userID, "count", len(ids))
	return ids, nil
}

// CreateOrder persists an order and returns the new order id.
func (r *commerceRepository) CreateOrder(ctx context.Context, order entity.Order) (string, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	ids, err := r.client.InsertMany(ctx, collOrders, []any{order})
	if err != nil {
		return "", err
	}
	r.logger.Info("created order", "user_id", order.UserID, "order_id", ids[0])
	return ids[0], nil
}

// AddFeedback persists a review and returns the new feedback id.
func (r *commerceRepository) AddFeedback(ctx context.Context, feedback entity.Feedback) (string, error) {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	ids, err := r.client.InsertMany(ctx, collFeedback, []any{feedback})
	if err != nil {
		return "", err
	}
	r.logger.Info("added feedback", "user_id", feedback.UserID, "feedback_id", ids[0])
	return ids[0], nil
}
