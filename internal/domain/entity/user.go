package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile is a registered caller. UserID is the external identifier
// used everywhere in the assistant; the Mongo _id is incidental.
type UserProfile struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID            string             `bson:"user_id" json:"user_id"`
	Name              string             `bson:"name" json:"name"`
	Phone             string             `bson:"phone" json:"phone"`
	Email             string             `bson:"email" json:"email"`
	RegistrationDate  time.Time          `bson:"registration_date" json:"registration_date"`
	CustomerType      string             `bson:"customer_type" json:"customer_type"`
	PreferredLanguage string             `bson:"preferred_language" json:"preferred_language"`
	Location          string             `bson:"location" json:"location"`
	TotalOrders       int                `bson:"total_orders,omitempty" json:"total_orders,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
