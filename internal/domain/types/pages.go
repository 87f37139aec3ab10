package types

import "slices"

// Pricing is the camping price block. Values are free text.
type Pricing struct {
	Tent      string `json:"tent,omitempty"`
	Tourer    string `json:"tourer,omitempty"`
	Motorhome string `json:"motorhome,omitempty"`
	Note      string `json:"note,omitempty"`
}

// CampingInfo is the camping page. The zero value is the degraded page.
type CampingInfo struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	PitchTypes  []string `json:"pitchTypes,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	Pricing     Pricing  `json:"pricing"`
}

// Heading returns the title, or "Camping" when the page has none.
func (c CampingInfo) Heading() string {
	if c.Title == "" {
		return "Camping"
	}
	return c.Title
}

// Empty reports whether nothing beyond the heading would render.
func (c CampingInfo) Empty() bool {
	return c.Title == "" && c.Description == "" && len(c.PitchTypes) == 0 &&
		len(c.Facilities) == 0 && c.Pricing == (Pricing{})
}

// Clone returns a deep copy.
func (c CampingInfo) Clone() CampingInfo {
	c.PitchTypes = slices.Clone(c.PitchTypes)
	c.Facilities = slices.Clone(c.Facilities)
	return c
}

// FishingInfo is the fishing page. The zero value is the degraded page.
type FishingInfo struct {
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	Species        []string `json:"species,omitempty"`
	DayTicketPrice string   `json:"dayTicketPrice,omitempty"`
	Rules          []string `json:"rules,omitempty"`
}

// Heading returns the title, or "Fishing" when the page has none.
func (f FishingInfo) Heading() string {
	if f.Title == "" {
		return "Fishing"
	}
	return f.Title
}

// Empty reports whether nothing beyond the heading would render.
func (f FishingInfo) Empty() bool {
	return f.Title == "" && f.Description == "" && len(f.Species) == 0 &&
		f.DayTicketPrice == "" && len(f.Rules) == 0
}

// Clone returns a deep copy.
func (f FishingInfo) Clone() FishingInfo {
	f.Species = slices.Clone(f.Species)
	f.Rules = slices.Clone(f.Rules)
	return f
}
