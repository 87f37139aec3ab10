package fallback

import "birchwood/internal/domain"

// Builtin returns the compiled-in defaults shipped with the client. They are
// the last known good contact details and site rules of the business.
func Builtin() Defaults {
	lat, lng := 53.16737, 0.31966
	return Defaults{
		Contact: &domain.ContactInfo{
			Phone:     "07887 577338",
			Email:     "info@birchwood-skegness.co.uk",
			Address:   "Birchwood Fishing & Camping, Mill Lane, Skegness, Lincolnshire, PE25 1HW, UK",
			Latitude:  &lat,
			Longitude: &lng,
			Facebook:  "https://www.facebook.com/share/1AiuyXLNeF/",
		},
		Rules: domain.Rules{
			{ID: "rule_1", Title: "Check-in/Check-out", Description: "Check-in from 2 PM, Check-out by 11 AM", Category: domain.RuleGeneral, Order: 1},
			{ID: "rule_2", Title: "Quiet Hours", Description: "Please keep noise to a minimum between 10 PM and 8 AM", Category: domain.RuleGeneral, Order: 2},
			{ID: "rule_3", Title: "Pets", Description: "Pets are welcome but must be kept on a lead and under control at all times", Category: domain.RuleGeneral, Order: 3},
			{ID: "rule_4", Title: "Speed Limit", Description: "Maximum speed limit of 5 mph on site", Category: domain.RuleCamping, Order: 4},
			{ID: "rule_5", Title: "Fires", Description: "No open fires. BBQs allowed but must be off the ground", Category: domain.RuleCamping, Order: 5},
			{ID: "rule_6", Title: "Waste Disposal", Description: "Please use designated bins and keep the site clean", Category: domain.RuleGeneral, Order: 6},
		},
	}
}
