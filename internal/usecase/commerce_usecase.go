package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

// RecommendationLimit caps the number of products a recommendation returns.
const RecommendationLimit = 5

// CommerceUseCase is the business logic behind the assistant's tools.
type CommerceUseCase interface {
	// ListCatalog returns every product.
	ListCatalog(ctx context.Context) ([]entity.Product, error)

	// GetWishlist returns the user's wishlist items.
	GetWishlist(ctx context.Context, userID string) ([]entity.WishlistItem, error)

	// PlaceOrder normalizes and persists an order. The item list must be
	// non-empty with positive quantities; product codes are not checked
	// against the catalog. Returns the new order id and the stored order.
	PlaceOrder(ctx context.Context, userID string, items []entity.OrderItem, shippingAddress, paymentMethod, specialInstructions string) (string, entity.Order, error)

	// SubmitFeedback persists a review. The verified-purchase flag is set
	// iff orderID is non-empty. Returns the new feedback id.
	SubmitFeedback(ctx context.Context, userID, productID string, rating float64, review, orderID string) (string, error)

	// Recommend returns up to RecommendationLimit in-stock products the
	// user has not wishlisted, best rated first, along with the catalog
	// filter that was applied. A missing wishlist is treated as empty.
	Recommend(ctx context.Context, userID, category string, maxPrice *float64) ([]entity.Product, entity.ProductFilter, error)

	// GetUserInfo returns the stored profile for the user.
	GetUserInfo(ctx context.Context, userID string) (*entity.UserProfile, error)

	// BuildSessionContext renders the profile + wishlist summary injected
	// into the agent before the call starts. It never fails: on any
	// lookup problem it falls back to guest defaults.
	BuildSessionContext(ctx context.Context, userID string) string
}

type commerceUseCase struct {
	repo repository.CommerceRepository
}

// NewCommerceUseCase builds the commerce use case on a repository.
func NewCommerceUseCase(repo repository.CommerceRepository) CommerceUseCase {
	return &commerceUseCase{repo: repo}
}

// ListCatalog returns every product.
func (u *commerceUseCase) ListCatalog(ctx context.Context) ([]entity.Product, error) {
	return u.repo.ListProducts(ctx)
}

// GetWishlist returns the user's wishlist items.
func (u *commerceUseCase) GetWishlist(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	return u.repo.GetWishlist(ctx, userID)
}

// PlaceOrder normalizes and persists an order.
func (u *commerceUseCase) PlaceOrder(ctx context.Context, userID string, items []entity.OrderItem, shippingAddress, paymentMethod, specialInstructions string) (string, entity.Order, error) {
	if len(items) == 0 {
		return "", entity.Order{}, fmt.Errorf("order must contain at least one item")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return "", entity.Order{}, fmt.Errorf("order item is missing a product id")
		}
		if item.Quantity <= 0 {
			return "", entity.Order{}, fmt.Errorf("order item quantity must be positive")
		}
	}

	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodOnline
	}

	order := entity.Order{
		UserID:              userID,
		Items:               items,
		ShippingAddress:     shippingAddress,
		PaymentMethod:       paymentMethod,
		SpecialInstructions: specialInstructions,
		Status:              entity.OrderStatusPending,
	}

	orderID, err := u.repo.CreateOrder(ctx, order)
	if err != nil {
		return "", entity.Order{}, err
	}
	return orderID, order, nil
}

// SubmitFeedback persists a review.
func (u *commerceUseCase) SubmitFeedback(ctx context.Context, userID, productID string, rating float64, review, orderID string) (string, error) {
	if rating < 1.0 || rating > 5.0 {
		return "", fmt.Errorf("rating must be between 1 and 5, got %g", rating)
	}

	feedback := entity.Feedback{
		UserID:           userID,
		ProductID:        productID,
		OrderID:          orderID,
		Rating:           rating,
		Review:           review,
		VerifiedPurchase: orderID != "",
	}
	return u.repo.AddFeedback(ctx, feedback)
}

// Recommend returns top-rated in-stock products the user has not wishlisted.
func (u *commerceUseCase) Recommend(ctx context.Context, userID, category string, maxPrice *float64) ([]entity.Product, entity.ProductFilter, error) {
	// A user with no wishlist yet still gets recommendations.
	wishlisted := make(map[string]bool)
	if items, err := u.repo.GetWishlist(ctx, userID); err == nil {
		for _, item := range items {
			wishlisted[item.ProductID] = true
		}
	}

	inStock := true
	filter := entity.ProductFilter{
		InStock:  &inStock,
		Category: category,
		MaxPrice: maxPrice,
	}

	products, err := u.repo.ListProductsByFilter(ctx, filter)
	if err != nil {
		return nil, filter, err
	}

	candidates := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !wishlisted[p.ProductID] {
			candidates = append(candidates, p)
		}
	}

	// Stable sort keeps repository order on equal ratings.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})

	if len(candidates) > RecommendationLimit {
		candidates = candidates[:RecommendationLimit]
	}
	return candidates, filter, nil
}

// GetUserInfo returns the stored profile for the user.
func (u *commerceUseCase) GetUserInfo(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return u.repo.GetUserProfile(ctx, userID)
}

// Guest defaults used when the profile cannot be loaded.
func guestProfile(userID string) entity.UserProfile {
	return entity.UserProfile{
		UserID:            userID,
		Name:              "Guest User",
		Email:             fmt.Sprintf("guest_%s@twiddles.example", userID),
		CustomerType:      "new",
		PreferredLanguage: "en",
		Location:          "unknown",
	}
}

// BuildSessionContext renders the profile + wishlist summary for the agent.
func (u *commerceUseCase) BuildSessionContext(ctx context.Context, userID string) string {
	// Not-found and store failures both degrade to a guest session.
	profile, err := u.repo.GetUserProfile(ctx, userID)
	if err != nil || profile == nil {
		guest := guestProfile(userID)
		profile = &guest
	}

	var sb strings.Builder
	sb.WriteString("CALLER PROFILE\n")
	fmt.Fprintf(&sb, "  user_id: %s\n", profile.UserID)
	fmt.Fprintf(&sb, "  name: %s\n", profile.Name)
	fmt.Fprintf(&sb, "  email: %s\n", profile.Email)
	fmt.Fprintf(&sb, "  customer_type: %s\n", profile.CustomerType)
	fmt.Fprintf(&sb, "  preferred_language: %s\n", profile.PreferredLanguage)
	fmt.Fprintf(&sb, "  location: %s\n", profile.Location)

	sb.WriteString("WISHLIST\n")
	items, err := u.repo.GetWishlist(ctx, userID)
	if err != nil || len(items) == 0 {
		sb.WriteString("  (empty)\n")
		return sb.String()
	}
	for _, item := range items {
		fmt.Fprintf(&sb, "  - %s x%d (priority %s)", item.ProductID, item.QuantityDesired, item.Priority)
		if item.Notes != "" {
			fmt.Fprintf(&sb, ": %s", item.Notes)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
