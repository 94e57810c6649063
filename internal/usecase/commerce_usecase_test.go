package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/infrastructure/storage"
)

type downRepository struct{}

var errDown = fmt.Errorf("store unreachable")

func (downRepository) ListProducts(context.Context) ([]entity.Product, error) { return nil, errDown }
func (downRepository) ListProductsByFilter(context.Context, entity.ProductFilter) ([]entity.Product, error) {
	return nil, errDown
}
func (downRepository) SaveProducts(context.Context, []entity.Product) ([]string, error) {
	return nil, errDown
}
func (downRepository) GetUserProfile(context.Context, string) (*entity.UserProfile, error) {
	return nil, errDown
}
func (downRepository) CreateUserProfile(context.Context, entity.UserProfile) (string, error) {
	return "", errDown
}
func (downRepository) UpdateUserProfile(context.Context, string, map[string]any) (bool, error) {
	return false, errDown
}
func (downRepository) GetWishlist(context.Context, string) ([]entity.WishlistItem, error) {
	return nil, errDown
}
func (downRepository) AddToWishlist(context.Context, string, []entity.WishlistItem) ([]string, error) {
	return nil, errDown
}
func (downRepository) CreateOrder(context.Context, entity.Order) (string, error) {
	return "", errDown
}
func (downRepository) AddFeedback(context.Context, entity.Feedback) (string, error) {
	return "", errDown
}

func TestPlaceOrderDefaults(t *testing.T) {
	u := NewCommerceUseCase(storage.NewMemoryCommerceRepository())

	orderID, order, err := u.PlaceOrder(context.Background(), "u1",
		[]entity.OrderItem{{ProductID: "TW-BT-001", Quantity: 2}}, "addr", "", "")
	require.NoError(t, err)

	assert.NotEmpty(t, orderID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodOnline, order.PaymentMethod)
}

func TestPlaceOrderRejectsBadItems(t *testing.T) {
	u := NewCommerceUseCase(storage.NewMemoryCommerceRepository())
	ctx := context.Background()

	_, _, err := u.PlaceOrder(ctx, "u1", nil, "addr", "", "")
	assert.Error(t, err)

	_, _, err = u.PlaceOrder(ctx, "u1", []entity.OrderItem{{ProductID: "", Quantity: 1}}, "addr", "", "")
	assert.Error(t, err)

	_, _, err = u.PlaceOrder(ctx, "u1", []entity.OrderItem{{ProductID: "X", Quantity: 0}}, "addr", "", "")
	assert.Error(t, err)
}

func TestSubmitFeedbackRange(t *testing.T) {
	u := NewCommerceUseCase(storage.NewMemoryCommerceRepository())
	ctx := context.Background()

	_, err := u.SubmitFeedback(ctx, "u1", "P1", 0.5, "bad", "")
	assert.Error(t, err)
	_, err = u.SubmitFeedback(ctx, "u1", "P1", 5.5, "good", "")
	assert.Error(t, err)

	id, err := u.SubmitFeedback(ctx, "u1", "P1", 3.0, "fine", "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestProfileRoundTrip(t *testing.T) {
	repo := storage.NewMemoryCommerceRepository()
	u := NewCommerceUseCase(repo)
	ctx := context.Background()

	_, err := repo.CreateUserProfile(ctx, entity.UserProfile{
		UserID:            "u1",
		Name:              "Priya",
		Email:             "priya@example.com",
		PreferredLanguage: "hindi",
		Location:          "Delhi",
	})
	require.NoError(t, err)

	profile, err := u.GetUserInfo(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Priya", profile.Name)
	assert.Equal(t, "priya@example.com", profile.Email)
	assert.Equal(t, "Delhi", profile.Location)
	assert.False(t, profile.CreatedAt.IsZero(), "creation timestamp must be injected")
}

func TestRecommendTruncatesToLimit(t *testing.T) {
	repo := storage.NewMemoryCommerceRepository()
	u := NewCommerceUseCase(repo)
	ctx := context.Background()

	var products []entity.Product
	for i := 0; i < 10; i++ {
		products = append(products, entity.Product{
			ProductID: fmt.Sprintf("P%d", i),
			Rating:    float64(i) / 2,
			InStock:   true,
		})
	}
	_, err := repo.SaveProducts(ctx, products)
	require.NoError(t, err)

	got, filter, err := u.Recommend(ctx, "u1", "", nil)
	require.NoError(t, err)
	assert.Len(t, got, RecommendationLimit)
	assert.Equal(t, "P9", got[0].ProductID, "best rated first")
	require.NotNil(t, filter.InStock)
}

func TestRecommendStableTieBreak(t *testing.T) {
	repo := storage.NewMemoryCommerceRepository()
	u := NewCommerceUseCase(repo)
	ctx := context.Background()

	_, err := repo.SaveProducts(ctx, []entity.Product{
		{ProductID: "A", Rating: 4.5, InStock: true},
		{ProductID: "B", Rating: 4.5, InStock: true},
		{ProductID: "C", Rating: 4.5, InStock: true},
	})
	require.NoError(t, err)

	got, _, err := u.Recommend(ctx, "u1", "", nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].ProductID)
	assert.Equal(t, "B", got[1].ProductID)
	assert.Equal(t, "C", got[2].ProductID)
}

func TestBuildSessionContextWithProfile(t *testing.T) {
	repo := storage.NewMemoryCommerceRepository()
	u := NewCommerceUseCase(repo)
	ctx := context.Background()

	_, err := repo.CreateUserProfile(ctx, entity.UserProfile{
		UserID:            "u1",
		Name:              "Meera Joshi",
		Email:             "meera@example.com",
		CustomerType:      "repeat",
		PreferredLanguage: "hinglish",
		Location:          "Pune",
	})
	require.NoError(t, err)
	_, err = repo.AddToWishlist(ctx, "u1", []entity.WishlistItem{
		{ProductID: "TW-BT-001", QuantityDesired: 2, Priority: entity.PriorityHigh, Notes: "morning snack"},
	})
	require.NoError(t, err)

	out := u.BuildSessionContext(ctx, "u1")
	assert.Contains(t, out, "Meera Joshi")
	assert.Contains(t, out, "meera@example.com")
	assert.Contains(t, out, "repeat")
	assert.Contains(t, out, "hinglish")
	assert.Contains(t, out, "Pune")
	assert.Contains(t, out, "TW-BT-001")
	assert.Contains(t, out, "morning snack")
}

func TestBuildSessionContextGuestFallback(t *testing.T) {
	for name, u := range map[string]CommerceUseCase{
		"unknown user": NewCommerceUseCase(storage.NewMemoryCommerceRepository()),
		"store down":   NewCommerceUseCase(downRepository{}),
	} {
		t.Run(name, func(t *testing.T) {
			out := u.BuildSessionContext(context.Background(), "mystery")
			assert.Contains(t, out, "Guest User")
			assert.Contains(t, out, "mystery")
			assert.Contains(t, out, "new")
			assert.Contains(t, out, "en")
			assert.Contains(t, out, "unknown")
			assert.Contains(t, out, "(empty)")
		})
	}
}
