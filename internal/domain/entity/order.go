package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status starts at pending; advancement is handled outside the
// assistant (fulfilment side).
const (
	OrderStatusPending = "pending"

	PaymentMethodOnline = "online"
)

// OrderItem is one line of an order. The product reference is weak.
type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Order is a placed order. No stock or price validation happens at
// creation time; the order is a transcription of what the caller asked for.
type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID              string             `bson:"user_id" json:"user_id"`
	Items               []OrderItem        `bson:"items" json:"items"`
	ShippingAddress     string             `bson:"shipping_address" json:"shipping_address"`
	PaymentMethod       string             `bson:"payment_method" json:"payment_method"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	Status              string             `bson:"status" json:"status"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
}
