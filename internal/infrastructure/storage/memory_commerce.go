package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

type memoryCommerceRepository struct {
	mu        sync.RWMutex
	products  []entity.Product
	users     map[string]*entity.UserProfile     // key: external user_id
	wishlists map[string][]entity.WishlistItem   // key: external user_id
	orders    map[string]entity.Order            // key: order id
	feedback  map[string]entity.Feedback         // key: feedback id
}

// NewMemoryCommerceRepository builds an in-memory commerce repository for
// local mode and tests.
func NewMemoryCommerceRepository() repository.CommerceRepository {
	return &memoryCommerceRepository{
		users:     make(map[string]*entity.UserProfile),
		wishlists: make(map[string][]entity.WishlistItem),
		orders:    make(map[string]entity.Order),
		feedback:  make(map[string]entity.Feedback),
	}
}

// ListProducts returns the whole catalog.
func (m *memoryCommerceRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

// ListProductsByFilter returns catalog entries matching the filter.
func (m *memoryCommerceRepository) ListProductsByFilter(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.Product
	for _, p := range m.products {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// SaveProducts bulk-loads catalog entries.
func (m *memoryCommerceRepository) SaveProducts(ctx context.Context, products []entity.Product) ([]string, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("no products to save")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(products))
	for _, p := range products {
		m.products = append(m.products, p)
		ids = append(ids, uuid.New().String())
	}
	return ids, nil
}

// GetUserProfile looks a profile up by its external user_id.
func (m *memoryCommerceRepository) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, exists := m.users[userID]
	if !exists {
		return nil, repository.ErrNotFound
	}
	cp := *profile
	return &cp, nil
}

// CreateUserProfile persists a new profile and returns the record id.
func (m *memoryCommerceRepository) CreateUserProfile(ctx context.Context, profile entity.UserProfile) (string, error) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[profile.UserID] = &profile
	return uuid.New().String(), nil
}

// UpdateUserProfile applies a partial merge of the named fields.
func (m *memoryCommerceRepository) UpdateUserProfile(ctx context.Context, userID string, fields map[string]any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile, exists := m.users[userID]
	if !exists {
		return false, nil
	}

	for k, v := range fields {
		switch k {
		case "name":
			profile.Name, _ = v.(string)
		case "phone":
			profile.Phone, _ = v.(string)
		case "email":
			profile.Email, _ = v.(string)
		case "customer_type":
			profile.CustomerType, _ = v.(string)
		case "preferred_language":
			profile.PreferredLanguage, _ = v.(string)
		case "location":
			profile.Location, _ = v.(string)
		case "total_orders":
			if n, ok := v.(int); ok {
				profile.TotalOrders = n
			}
		}
	}
	profile.UpdatedAt = time.Now().UTC()
	return true, nil
}

// GetWishlist returns the user's wishlist.
func (m *memoryCommerceRepository) GetWishlist(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := m.wishlists[userID]
	out := make([]entity.WishlistItem, len(items))
	copy(out, items)
	return out, nil
}

// AddToWishlist appends items to the user's wishlist.
func (m *memoryCommerceRepository) AddToWishlist(ctx context.Context, userID string, items []entity.WishlistItem) ([]string, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no wishlist items to add")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.AddedDate.IsZero() {
			item.AddedDate = time.Now().UTC()
		}
		m.wishlists[userID] = append(m.wishlists[userID], item)
		ids = append(ids, uuid.New().String())
	}
	return ids, nil
}

// CreateOrder persists an order and returns the new order id.
func (m *memoryCommerceRepository) CreateOrder(ctx context.Context, order entity.Order) (string, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.orders[id] = order
	return id, nil
}

// AddFeedback persists a review and returns the new feedback id.
func (m *memoryCommerceRepository) AddFeedback(ctx context.Context, feedback entity.Feedback) (string, error) {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.feedback[id] = feedback
	return id, nil
}
