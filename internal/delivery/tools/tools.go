// Package tools exposes the assistant's callable operations. Every
// handler takes primitive arguments and returns a single string: a JSON
// payload on success, a plain-language sentence on failure. Nothing here
// ever surfaces an error value, because the calling agent can only relay
// text back into the conversation.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
	"github.com/twiddles/voice-assistant/internal/domain/repository"
	"github.com/twiddles/voice-assistant/internal/usecase"
)

// Handler implements the assistant's tools on top of the commerce use case.
type Handler struct {
	commerce usecase.CommerceUseCase
	logger   *slog.Logger
}

// NewHandler builds the tool handler.
func NewHandler(commerce usecase.CommerceUseCase, logger *slog.Logger) *Handler {
	return &Handler{commerce: commerce, logger: logger}
}

// ListCatalog returns every product as JSON.
func (h *Handler) ListCatalog(ctx context.Context) string {
	products, err := h.commerce.ListCatalog(ctx)
	if err != nil {
		h.logger.Error("list catalog failed", "error", err)
		return "Sorry, I could not load the product catalog right now. Please try again in a moment."
	}
	if len(products) == 0 {
		return "The product catalog is currently empty."
	}
	return h.encode(map[string]any{
		"count":    len(products),
		"products": products,
	})
}

// GetWishlist returns the user's wishlist items as JSON.
func (h *Handler) GetWishlist(ctx context.Context, userID string) string {
	if userID == "" {
		return "I need a user id to look up a wishlist."
	}

	items, err := h.commerce.GetWishlist(ctx, userID)
	if err != nil {
		h.logger.Error("get wishlist failed", "user_id", userID, "error", err)
		return "Sorry, I could not look up the wishlist right now. Please try again in a moment."
	}
	if len(items) == 0 {
		return fmt.Sprintf("User %s has no items in their wishlist yet.", userID)
	}
	return h.encode(map[string]any{
		"user_id": userID,
		"count":   len(items),
		"items":   items,
	})
}

// orderItemInput is the shape each entry of the items JSON must have.
type orderItemInput struct {
	ProductID *string  `json:"product_id"`
	Quantity  *float64 `json:"quantity"`
}

// PlaceOrder parses and validates the items JSON, persists the order and
// echoes the normalized order back. Product codes are not checked against
// the catalog and no stock or price computation happens here.
func (h *Handler) PlaceOrder(ctx context.Context, userID, itemsJSON, shippingAddress, paymentMethod, specialInstructions string) string {
	if userID == "" {
		return "I need a user id to place an order."
	}

	var raw []orderItemInput
	if err := json.Unmarshal([]byte(itemsJSON), &raw); err != nil {
		return fmt.Sprintf("I could not read the order items: %v. Items must be a JSON list of objects with product_id and quantity.", err)
	}
	if len(raw) == 0 {
		return "The order has no items. Please add at least one product before ordering."
	}

	items := make([]entity.OrderItem, 0, len(raw))
	for i, in := range raw {
		if in.ProductID == nil || *in.ProductID == "" {
			return fmt.Sprintf("Order item %d is missing its product_id.", i+1)
		}
		if in.Quantity == nil {
			return fmt.Sprintf("Order item %d is missing its quantity.", i+1)
		}
		q := *in.Quantity
		if q <= 0 || q != math.Trunc(q) {
			return fmt.Sprintf("Order item %d has an invalid quantity %g; quantity must be a positive whole number.", i+1, q)
		}
		items = append(items, entity.OrderItem{ProductID: *in.ProductID, Quantity: int(q)})
	}

	orderID, order, err := h.commerce.PlaceOrder(ctx, userID, items, shippingAddress, paymentMethod, specialInstructions)
	if err != nil {
		h.logger.Error("place order failed", "user_id", userID, "error", err)
		return "Sorry, I could not place the order right now. Please try again in a moment."
	}
	return h.encode(map[string]any{
		"order_id": orderID,
		"order":    order,
	})
}

// SubmitFeedback validates the rating text and records a review.
func (h *Handler) SubmitFeedback(ctx context.Context, userID, productID, rating, reviewText, orderID string) string {
	if userID == "" || productID == "" {
		return "I need both a user id and a product id to record feedback."
	}

	parsed, problem := parseRating(rating)
	if problem != "" {
		return problem
	}

	feedbackID, err := h.commerce.SubmitFeedback(ctx, userID, productID, parsed, reviewText, orderID)
	if err != nil {
		h.logger.Error("submit feedback failed", "user_id", userID, "product_id", productID, "error", err)
		return "Sorry, I could not record the feedback right now. Please try again in a moment."
	}
	return h.encode(map[string]any{
		"feedback_id":       feedbackID,
		"product_id":        productID,
		"rating":            parsed,
		"verified_purchase": orderID != "",
	})
}

// Recommend suggests up to five top-rated in-stock products the user has
// not already wishlisted. maxPrice arrives as text and may be empty.
func (h *Handler) Recommend(ctx context.Context, userID, category, maxPrice string) string {
	if userID == "" {
		return "I need a user id to make recommendations."
	}

	var priceCap *float64
	if maxPrice != "" {
		v, problem := parsePrice(maxPrice)
		if problem != "" {
			return problem
		}
		priceCap = &v
	}

	products, filter, err := h.commerce.Recommend(ctx, userID, category, priceCap)
	if err != nil {
		h.logger.Error("recommend failed", "user_id", userID, "error", err)
		return "Sorry, I could not put together recommendations right now. Please try again in a moment."
	}
	return h.encode(map[string]any{
		"filter_applied":  filter,
		"count":           len(products),
		"recommendations": products,
	})
}

// GetUserInfo returns the stored profile as JSON. Not-found and store
// failures are both reported as sentences, not faults.
func (h *Handler) GetUserInfo(ctx context.Context, userID string) string {
	if userID == "" {
		return "I need a user id to look up a profile."
	}

	profile, err := h.commerce.GetUserInfo(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Sprintf("I could not find a profile for user %s.", userID)
	}
	if err != nil {
		h.logger.Error("get user info failed", "user_id", userID, "error", err)
		return "Sorry, I could not look up the profile right now. Please try again in a moment."
	}
	return h.encode(profile)
}

func (h *Handler) encode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode tool result", "error", err)
		return "Sorry, I could not prepare that result."
	}
	return string(data)
}

// parseRating returns the parsed rating, or a sentence describing what
// was wrong with it.
func parseRating(raw string) (float64, string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Sprintf("The rating %q is not a number; please give a rating between 1 and 5.", raw)
	}
	if v < 1.0 || v > 5.0 {
		return 0, fmt.Sprintf("The rating %g is out of range; ratings go from 1 to 5.", v)
	}
	return v, ""
}

func parsePrice(raw string) (float64, string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0, fmt.Sprintf("The maximum price %q is not a valid amount.", raw)
	}
	return v, ""
}
