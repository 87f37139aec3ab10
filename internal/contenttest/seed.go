package contenttest

import (
	"image/color"

	"birchwood/internal/domain"
)

// SeedContact is what the live service answers for /api/contact.
func SeedContact() map[string]any {
	return map[string]any{
		"id":        "contact_info",
		"phone":     "01754 000000",
		"email":     "bookings@birchwood.test",
		"address":   "Birchwood, Mill Lane, Skegness",
		"latitude":  53.1,
		"longitude": 0.3,
		"facebook":  "https://www.facebook.com/birchwood.test",
	}
}

// SeedRules returns server rules deliberately out of display order.
func SeedRules() []domain.SiteRule {
	return []domain.SiteRule{
		{ID: "r3", Title: "Fires", Description: "BBQs off the ground", Category: domain.RuleCamping, Order: 2},
		{ID: "r1", Title: "Quiet", Description: "Quiet after 10 PM", Category: domain.RuleGeneral, Order: 1},
		{ID: "r2", Title: "Lead", Description: "Dogs on a lead", Category: "pets", Order: 1},
	}
}

// SeedCamping returns a full camping page.
func SeedCamping() domain.CampingInfo {
	return domain.CampingInfo{
		Title:       "Camping at Birchwood",
		Description: "A quiet, family-run campsite.",
		PitchTypes:  []string{"Tent pitches", "Tourer pitches"},
		Facilities:  []string{"Hot showers", "Electric hook-ups"},
		Pricing: domain.Pricing{
			Tent:      "Contact for rates",
			Tourer:    "Contact for rates",
			Motorhome: "Contact for rates",
			Note:      "Prices vary by season.",
		},
	}
}

// SeedFishing returns a full fishing page.
func SeedFishing() domain.FishingInfo {
	return domain.FishingInfo{
		Title:          "Fishing at Birchwood",
		Description:    "A well-stocked lake.",
		Species:        []string{"Carp", "Tench"},
		DayTicketPrice: "Day tickets available",
		Rules:          []string{"Barbless hooks", "Take litter home"},
	}
}

// SeedGallery returns two small images in different categories.
func SeedGallery() []map[string]any {
	return []map[string]any{
		{"id": "a", "title": "Pitches", "category": "camping", "imageData": PNGDataURI(8, 4, color.RGBA{G: 200, A: 255})},
		{"id": "b", "title": "Lake", "category": "fishing", "description": "Morning", "imageData": PNGDataURI(4, 4, color.RGBA{B: 200, A: 255})},
	}
}
