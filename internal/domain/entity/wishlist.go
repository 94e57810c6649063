package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist item priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// WishlistItem is one saved product in a user's wishlist. The product
// reference is a weak one: it is not validated against the catalog.
type WishlistItem struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID               string             `bson:"product_id" json:"product_id"`
	AddedDate               time.Time          `bson:"added_date" json:"added_date"`
	Priority                string             `bson:"priority" json:"priority"`
	Notes                   string             `bson:"notes" json:"notes"`
	QuantityDesired         int                `bson:"quantity_desired" json:"quantity_desired"`
	NotificationOnStock     bool               `bson:"notification_on_stock" json:"notification_on_stock"`
	NotificationOnPriceDrop bool               `bson:"notification_on_price_drop" json:"notification_on_price_drop"`
}
