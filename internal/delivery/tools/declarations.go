package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/generative-ai-go/genai"
)

// Tool names as the model sees them.
const (
	ToolListCatalog    = "list_catalog"
	ToolGetWishlist    = "get_wishlist"
	ToolPlaceOrder     = "place_order"
	ToolSubmitFeedback = "submit_feedback"
	ToolRecommend      = "recommend_products"
	ToolGetUserInfo    = "get_user_info"
)

// Declarations describes every tool for the model's function calling.
func Declarations() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        ToolListCatalog,
				Description: "List every Twiddles product with prices, stock and ratings.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{},
				},
			},
			{
				Name:        ToolGetWishlist,
				Description: "Get the caller's saved wishlist items.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"user_id": {Type: genai.TypeString, Description: "The caller's user id."},
					},
					Required: []string{"user_id"},
				},
			},
			{
				Name:        ToolPlaceOrder,
				Description: "Place an order for the caller. Items must be a JSON list of {product_id, quantity}.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"user_id":              {Type: genai.TypeString, Description: "The caller's user id."},
						"items":                {Type: genai.TypeString, Description: `JSON list of order items, e.g. [{"product_id":"TW-BT-001","quantity":2}].`},
						"shipping_address":     {Type: genai.TypeString, Description: "Where to deliver the order."},
						"payment_method":       {Type: genai.TypeString, Description: "Payment method; defaults to online."},
						"special_instructions": {Type: genai.TypeString, Description: "Optional delivery notes."},
					},
					Required: []string{"user_id", "items", "shipping_address"},
				},
			},
			{
				Name:        ToolSubmitFeedback,
				Description: "Record the caller's rating and review for a product.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"user_id":     {Type: genai.TypeString, Description: "The caller's user id."},
						"product_id":  {Type: genai.TypeString, Description: "The product being reviewed."},
						"rating":      {Type: genai.TypeString, Description: "Rating between 1 and 5."},
						"review_text": {Type: genai.TypeString, Description: "The caller's review in their own words."},
						"order_id":    {Type: genai.TypeString, Description: "Optional order id, marks the review as a verified purchase."},
					},
					Required: []string{"user_id", "product_id", "rating"},
				},
			},
			{
				Name:        ToolRecommend,
				Description: "Recommend up to five top-rated in-stock products the caller has not wishlisted.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"user_id":   {Type: genai.TypeString, Description: "The caller's user id."},
						"category":  {Type: genai.TypeString, Description: "Optional category, e.g. Spreads or Bites."},
						"max_price": {Type: genai.TypeString, Description: "Optional maximum price."},
					},
					Required: []string{"user_id"},
				},
			},
			{
				Name:        ToolGetUserInfo,
				Description: "Look up the caller's stored profile.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"user_id": {Type: genai.TypeString, Description: "The caller's user id."},
					},
					Required: []string{"user_id"},
				},
			},
		},
	}}
}

// Dispatch routes one model function call to its handler. Unknown tools
// and bad arguments come back as sentences the model can act on.
func (h *Handler) Dispatch(ctx context.Context, name string, args map[string]any) string {
	switch name {
	case ToolListCatalog:
		return h.ListCatalog(ctx)
	case ToolGetWishlist:
		return h.GetWishlist(ctx, stringArg(args, "user_id"))
	case ToolPlaceOrder:
		return h.PlaceOrder(ctx,
			stringArg(args, "user_id"),
			stringArg(args, "items"),
			stringArg(args, "shipping_address"),
			stringArg(args, "payment_method"),
			stringArg(args, "special_instructions"))
	case ToolSubmitFeedback:
		return h.SubmitFeedback(ctx,
			stringArg(args, "user_id"),
			stringArg(args, "product_id"),
			stringArg(args, "rating"),
			stringArg(args, "review_text"),
			stringArg(args, "order_id"))
	case ToolRecommend:
		return h.Recommend(ctx,
			stringArg(args, "user_id"),
			stringArg(args, "category"),
			stringArg(args, "max_price"))
	case ToolGetUserInfo:
		return h.GetUserInfo(ctx, stringArg(args, "user_id"))
	default:
		return fmt.Sprintf("There is no tool named %q.", name)
	}
}

// stringArg renders an argument as text; models occasionally send numbers
// where strings are declared.
func stringArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
