package main

import (
	"time"

	"github.com/twiddles/voice-assistant/internal/domain/entity"
)

func sampleProducts() []entity.Product {
	return []entity.Product{
		{
			ProductID:    "TW-SP-001",
			Name:         "Walnut Brownie Chocolate Spread",
			Category:     "Spreads",
			Brand:        "Twiddles",
			Price:        299,
			MRP:          399,
			Size:         "100g",
			Description:  "Made with 50% California Walnuts + Almonds & Seeds. Rich in Omega-3 and protein.",
			Ingredients:  []string{"California Walnuts", "Almonds", "Seeds", "Dark Chocolate", "Jaggery"},
			DietaryInfo:  []string{"No Refined Sugar", "High Protein", "Omega-3 Rich"},
			ImageURL:     "walnut_brownie_spread.jpg",
			InStock:      true,
			Rating:       4.8,
			ReviewsCount: 245,
		},
		{
			ProductID:    "TW-SP-002",
			Name:         "Almond Silk Chocolate Spread",
			Category:     "Spreads",
			Brand:        "Twiddles",
			Price:        279,
			MRP:          369,
			Size:         "100g",
			Description:  "Smooth and creamy almond-based chocolate spread with natural sweeteners.",
			Ingredients:  []string{"Almonds", "Dark Chocolate", "Coconut Oil", "Jaggery", "Vanilla"},
			DietaryInfo:  []string{"No Refined Sugar", "Gluten Free", "High Protein"},
			ImageURL:     "almond_silk_spread.jpg",
			InStock:      true,
			Rating:       4.7,
			ReviewsCount: 189,
		},
		{
			ProductID:    "TW-SP-003",
			Name:         "Hazelnut Crunch Spread",
			Category:     "Spreads",
			Brand:        "Twiddles",
			Price:        319,
			MRP:          399,
			Size:         "120g",
			Description:  "Luxurious hazelnut spread with crunchy pieces and premium chocolate.",
			Ingredients:  []string{"Hazelnuts", "Dark Chocolate", "Coconut Sugar", "Vanilla"},
			DietaryInfo:  []string{"No Refined Sugar", "Gluten Free", "Premium Quality"},
			ImageURL:     "hazelnut_crunch_spread.jpg",
			InStock:      true,
			Rating:       4.8,
			ReviewsCount: 201,
		},
		{
			ProductID:    "TW-BT-001",
			Name:         "Orange Noir Bites",
			Category:     "Bites",
			Brand:        "Twiddles",
			Price:        199,
			MRP:          249,
			Size:         "80g",
			Description:  "Premium dark chocolate bites infused with natural orange essence and nuts.",
			Ingredients:  []string{"Dark Chocolate", "Orange Zest", "Almonds", "Cashews", "Dates"},
			DietaryInfo:  []string{"No Refined Sugar", "Natural Flavors", "Antioxidant Rich"},
			ImageURL:     "orange_noir_bites.jpg",
			InStock:      true,
			Rating:       4.9,
			ReviewsCount: 312,
		},
		{
			ProductID:    "TW-BT-002",
			Name:         "Chocolate Almond Crunch Bites",
			Category:     "Bites",
			Brand:        "Twiddles",
			Price:        229,
			MRP:          289,
			Size:         "90g",
			Description:  "Crunchy almond pieces coated in rich dark chocolate. Perfect guilt-free snacking.",
			Ingredients:  []string{"Roasted Almonds", "Dark Chocolate", "Jaggery", "Sea Salt"},
			DietaryInfo:  []string{"No Refined Sugar", "High Protein", "Keto Friendly"},
			ImageURL:     "chocolate_almond_bites.jpg",
			InStock:      true,
			Rating:       4.6,
			ReviewsCount: 156,
		},
		{
			ProductID:    "TW-BT-003",
			Name:         "Mixed Nut Energy Bites",
			Category:     "Bites",
			Brand:        "Twiddles",
			Price:        249,
			MRP:          319,
			Size:         "100g",
			Description:  "Power-packed energy bites with mixed nuts, seeds and natural sweeteners.",
			Ingredients:  []string{"Almonds", "Walnuts", "Cashews", "Pumpkin Seeds", "Dates", "Coconut"},
			DietaryInfo:  []string{"No Refined Sugar", "High Energy", "Protein Rich"},
			ImageURL:     "mixed_nut_bites.jpg",
			InStock:      false,
			Rating:       4.5,
			ReviewsCount: 98,
		},
		{
			ProductID:    "TW-BT-004",
			Name:         "Dark Chocolate Walnut Bites",
			Category:     "Bites",
			Brand:        "Twiddles",
			Price:        269,
			MRP:          329,
			Size:         "85g",
			Description:  "Premium California walnuts covered in 70% dark chocolate.",
			Ingredients:  []string{"California Walnuts", "70% Dark Chocolate", "Coconut Sugar"},
			DietaryInfo:  []string{"No Refined Sugar", "Omega-3 Rich", "Antioxidants"},
			ImageURL:     "dark_chocolate_walnut_bites.jpg",
			InStock:      true,
			Rating:       4.7,
			ReviewsCount: 134,
		},
		{
			ProductID:    "TW-CM-001",
			Name:         "Twiddles Combo Pack - Spreads Trio",
			Category:     "Combo",
			Brand:        "Twiddles",
			Price:        799,
			MRP:          1167,
			Size:         "3x100g",
			Description:  "Get all three signature spreads in one combo pack at special price.",
			Ingredients:  []string{"Walnut Brownie", "Almond Silk", "Hazelnut Crunch"},
			DietaryInfo:  []string{"No Refined Sugar", "Variety Pack", "Best Value"},
			ImageURL:     "spreads_combo.jpg",
			InStock:      true,
			Rating:       4.9,
			ReviewsCount: 87,
		},
	}
}

func sampleUsers() []entity.UserProfile {
	now := time.Now()
	return []entity.UserProfile{
		{
			UserID:            "new_user_001",
			Name:              "Priya Sharma",
			Phone:             "+91-9876543210",
			Email:             "priya.sharma@gmail.com",
			RegistrationDate:  now.AddDate(0, 0, -2),
			CustomerType:      "new",
			PreferredLanguage: "hindi",
			Location:          "Delhi",
		},
		{
			UserID:            "new_user_002",
			Name:              "Rahul Gupta",
			Phone:             "+91-8765432109",
			Email:             "rahul.gupta@yahoo.com",
			RegistrationDate:  now.AddDate(0, 0, -1),
			CustomerType:      "new",
			PreferredLanguage: "english",
			Location:          "Mumbai",
		},
		{
			UserID:            "new_user_003",
			Name:              "Anjali Singh",
			Phone:             "+91-7654321098",
			Email:             "anjali.singh@outlook.com",
			RegistrationDate:  now.AddDate(0, 0, -3),
			CustomerType:      "new",
			PreferredLanguage: "hinglish",
			Location:          "Bangalore",
		},
		{
			UserID:            "repeat_user_001",
			Name:              "Meera Joshi",
			Phone:             "+91-9123456789",
			Email:             "meera.joshi@gmail.com",
			RegistrationDate:  now.AddDate(0, -4, 0),
			CustomerType:      "repeat",
			PreferredLanguage: "hinglish",
			Location:          "Pune",
			TotalOrders:       4,
		},
	}
}

func sampleWishlist() []entity.WishlistItem {
	return []entity.WishlistItem{
		{
			ProductID:               "TW-BT-001",
			AddedDate:               time.Date(2024, 7, 20, 10, 30, 0, 0, time.UTC),
			Priority:                entity.PriorityHigh,
			Notes:                   "Love the orange flavor! Perfect for my morning snack",
			QuantityDesired:         2,
			NotificationOnStock:     true,
			NotificationOnPriceDrop: true,
		},
		{
			ProductID:               "TW-SP-001",
			AddedDate:               time.Date(2024, 7, 18, 14, 45, 0, 0, time.UTC),
			Priority:                entity.PriorityMedium,
			Notes:                   "Want to try this as a healthier spread option",
			QuantityDesired:         1,
			NotificationOnStock:     true,
			NotificationOnPriceDrop: false,
		},
		{
			ProductID:               "TW-CM-001",
			AddedDate:               time.Date(2024, 7, 15, 9, 20, 0, 0, time.UTC),
			Priority:                entity.PriorityLow,
			Notes:                   "Great value combo pack for gifting",
			QuantityDesired:         1,
			NotificationOnStock:     false,
			NotificationOnPriceDrop: true,
		},
		{
			ProductID:               "TW-BT-003",
			AddedDate:               time.Date(2024, 7, 22, 16, 15, 0, 0, time.UTC),
			Priority:                entity.PriorityHigh,
			Notes:                   "Currently out of stock - want to buy when available",
			QuantityDesired:         3,
			NotificationOnStock:     true,
			NotificationOnPriceDrop: false,
		},
	}
}
