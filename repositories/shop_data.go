package repositories

import "ice-cream-shop/models"

// Shop content is static marketing copy and never comes from the database.

func ShopInfo() models.ShopInfo {
	return models.ShopInfo{
		Name:        "Sweet Dreams Ice Cream",
		Tagline:     "Handcrafted happiness in every scoop",
		Description: "Family-owned artisanal ice cream shop serving premium flavors made with the finest ingredients since 1985.",
		Phone:       "(555) 123-CREAM",
		Email:       "hello@sweetdreamsicecream.com",
		Address:     "123 Sunshine Boulevard, Happy Valley, CA 90210",
		Hours: models.ShopHours{
			Weekdays: "11:00 AM - 9:00 PM",
			Weekends: "10:00 AM - 10:00 PM",
		},
		Social: models.ShopSocial{
			Instagram: "@sweetdreamsicecream",
			Facebook:  "Sweet Dreams Ice Cream",
			Twitter:   "@sweetdreams_ic",
		},
	}
}

func SpecialOffers() []models.SpecialOffer {
	return []models.SpecialOffer{
		{ID: 1, Title: "Family Pack Special", Description: "Buy 4 scoops, get 1 free! Perfect for family outings.", Discount: "20% OFF", ValidUntil: "2024-08-31", Code: "FAMILY20"},
		{ID: 2, Title: "Happy Hour", Description: "25% off all premium flavors between 2-4 PM weekdays", Discount: "25% OFF", ValidUntil: "2024-08-15", Code: "HAPPY25"},
		{ID: 3, Title: "Birthday Special", Description: "Free scoop on your birthday with valid ID", Discount: "FREE SCOOP", ValidUntil: "Ongoing", Code: "BIRTHDAY"},
	}
}

func CustomerReviews() []models.Review {
	return []models.Review{
		{ID: 1, Name: "Sarah Johnson", Rating: 5, Comment: "Absolutely the best ice cream in town! The salted caramel is divine.", Date: "2024-07-15", Verified: true},
		{ID: 2, Name: "Mike Rodriguez", Rating: 5, Comment: "Family-friendly atmosphere and incredible flavors. My kids love this place!", Date: "2024-07-12", Verified: true},
		{ID: 3, Name: "Emily Chen", Rating: 4, Comment: "Great variety of flavors and the staff is so friendly. Highly recommend!", Date: "2024-07-10", Verified: true},
		{ID: 4, Name: "David Wilson", Rating: 5, Comment: "The homemade quality really shows. You can taste the difference!", Date: "2024-07-08", Verified: true},
	}
}
