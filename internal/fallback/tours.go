// Package fallback holds the static destination set served when the CMS
// cannot be reached. It mirrors the curated list the site launched with.
package fallback

import "honesttour/internal/models/response_models"

var defaultContact = response_models.Contact{
	Phone: "+62 812 3456 7890",
	Email: "info@thehonesttour.com",
}

const defaultHours = "8:00 AM - 6:00 PM"

func Tours() []response_models.TourView {
	tours := make([]response_models.TourView, len(destinations))
	copy(tours, destinations)
	return tours
}

var destinations = []response_models.TourView{
	{
		ID:          1,
		Name:        "The Ritz-Carlton, Bali",
		Location:    "Nusa Dua, Bali",
		Rating:      4.8,
		ReviewCount: 2847,
		Price:       450,
		Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400&h=300&fit=crop",
		Images:      []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400&h=300&fit=crop"},
		Category:    "Luxury Hotel",
		Description: "Experience ultimate luxury at this clifftop resort with stunning ocean views and world-class amenities.",
		Amenities:   []string{"Pool", "Spa", "Restaurant", "Beach Access"},
		Contact:     defaultContact,
		Hours:       defaultHours,
	},
	{
		ID:          2,
		Name:        "Tanah Lot Temple",
		Location:    "Tabanan, Bali",
		Rating:      4.6,
		ReviewCount: 5432,
		Price:       15,
		Image:       "https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=400&h=300&fit=crop",
		Images:      []string{"https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=400&h=300&fit=crop"},
		Category:    "Temple",
		Description: "Ancient Hindu temple perched on a rock formation, famous for its sunset views.",
		Amenities:   []string{"Parking", "Gift Shop", "Restaurant", "Photography"},
		Contact:     defaultContact,
		Hours:       defaultHours,
	},
	{
		ID:          3,
		Name:        "Ubud Monkey Forest Sanctuary",
		Location:    "Ubud, Bali",
		Rating:      4.3,
		ReviewCount: 3921,
		Price:       8,
		Image:       "https://images.unsplash.com/photo-1582662167791-74d9b17e7210?w=400&h=300&fit=crop",
		Images:      []string{"https://images.unsplash.com/photo-1582662167791-74d9b17e7210?w=400&h=300&fit=crop"},
		Category:    "Nature Reserve",
		Description: "Sacred sanctuary home to hundreds of long-tailed macaques in their natural habitat.",
		Amenities:   []string{"Guided Tours", "Walking Trails", "Gift Shop", "Educational Center"},
		Contact:     defaultContact,
		Hours:       defaultHours,
	},
	{
		ID:          4,
		Name:        "Kuta Beach",
		Location:    "Kuta, Bali",
		Rating:      4.2,
		ReviewCount: 8765,
		Price:       0,
		Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=300&fit=crop",
		Images:      []string{"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=300&fit=crop"},
		Category:    "Beach",
		Description: "Popular beach destination known for surfing, golden sand, and vibrant nightlife.",
		Amenities:   []string{"Surfing", "Beach Clubs", "Restaurants", "Shopping"},
		Contact:     defaultContact,
		Hours:       defaultHours,
	},
	{
		ID:          5,
		Name:        "Tegallalang Rice Terraces",
		Location:    "Ubud, Bali",
		Rating:      4.7,
		ReviewCount: 2156,
		Price:       10,
		Image:       "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=400&h=300&fit=crop",
		Images:      []string{"https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=400&h=300&fit=crop"},
		Category:    "Cultural Site",
		Description: "Spectacular terraced rice fields offering breathtaking views and traditional Balinese agriculture.",
		Amenities:   []string{"Photography", "Cafe", "Swing", "Walking Trails"},
		Contact:     defaultContact,
		Hours:       defaultHours,
	},
	{
		ID:          6,
		Name:        "Four Seasons Resort Bali at Sayan",
		Location:    "Ubud, Bali",
		Rating:      4.9,
		ReviewCount: 1432,
		Price:       650,
		Image:       "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop",
		Images:      []string{"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop"},
		Category:    "Luxury Resort",
		Description: "Jungle luxury resort surrounded by tropical rainforest with award-winning spa.",
		Amenities:   []string{"Spa", "Infinity Pool", "Yoga", "Fine Dining"},
		Contact:     defaultContact,
		Hours:       defaultHours,
	},
}
