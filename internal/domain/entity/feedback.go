package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a product review left by a user. VerifiedPurchase is
// derived: true iff an order reference was supplied with the review.
type Feedback struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID           string             `bson:"user_id" json:"user_id"`
	ProductID        string             `bson:"product_id" json:"product_id"`
	OrderID          string             `bson:"order_id,omitempty" json:"order_id,omitempty"`
	Rating           float64            `bson:"rating" json:"rating"`
	Review           string             `bson:"review" json:"review"`
	VerifiedPurchase bool               `bson:"verified_purchase" json:"verified_purchase"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
