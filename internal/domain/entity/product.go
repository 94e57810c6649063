package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is one catalog entry. Products are created only via bulk
// catalog load and never updated through the assistant.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID    string             `bson:"product_id" json:"product_id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	Brand        string             `bson:"brand" json:"brand"`
	Price        float64            `bson:"price" json:"price"`
	MRP          float64            `bson:"mrp" json:"mrp"`
	Size         string             `bson:"size" json:"size"`
	Description  string             `bson:"description" json:"description"`
	Ingredients  []string           `bson:"ingredients" json:"ingredients"`
	DietaryInfo  []string           `bson:"dietary_info" json:"dietary_info"`
	ImageURL     string             `bson:"image_url" json:"image_url"`
	InStock      bool               `bson:"in_stock" json:"in_stock"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReviewsCount int                `bson:"reviews_count" json:"reviews_count"`
}

// ProductFilter narrows a catalog query. Nil fields are not applied.
type ProductFilter struct {
	InStock  *bool    `json:"in_stock,omitempty"`
	Category string   `json:"category,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// IsZero reports whether no predicate is set.
func (f ProductFilter) IsZero() bool {
	return f.InStock == nil && f.Category == "" && f.MaxPrice == nil
}

// Matches applies the filter in memory.
func (f ProductFilter) Matches(p Product) bool {
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}
