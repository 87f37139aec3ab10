package types

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ContactInfo is how a visitor reaches the business. Only Phone is required.
type ContactInfo struct {
	Phone     string   `json:"phone"`
	Email     string   `json:"email,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Facebook  string   `json:"facebook,omitempty"`
}

// Normalize trims fields and rejects a contact without a phone number.
func (c *ContactInfo) Normalize() error {
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	c.Facebook = strings.TrimSpace(c.Facebook)
	if c.Phone == "" {
		return errors.New("contact: phone is required")
	}
	return nil
}

// Clone returns a deep copy.
func (c ContactInfo) Clone() ContactInfo {
	out := c
	if c.Latitude != nil {
		lat := *c.Latitude
		out.Latitude = &lat
	}
	if c.Longitude != nil {
		lng := *c.Longitude
		out.Longitude = &lng
	}
	return out
}

// HasLocation reports whether both coordinates are present.
func (c ContactInfo) HasLocation() bool { return c.Latitude != nil && c.Longitude != nil }

// CallURL returns a tel: link, or "" without a phone.
func (c ContactInfo) CallURL() string {
	if c.Phone == "" {
		return ""
	}
	return "tel:" + strings.ReplaceAll(c.Phone, " ", "")
}

// EmailURL returns a mailto: link, or "" without an email.
func (c ContactInfo) EmailURL() string {
	if c.Email == "" {
		return ""
	}
	return "mailto:" + c.Email
}

// DirectionsURL returns a Google Maps directions link, or "" without coordinates.
func (c ContactInfo) DirectionsURL() string {
	if !c.HasLocation() {
		return ""
	}
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", fmt.Sprintf("%g,%g", *c.Latitude, *c.Longitude))
	return "https://www.google.com/maps/dir/?" + q.Encode()
}
