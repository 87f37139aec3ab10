package types

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// GalleryCategory tags a gallery image.
type GalleryCategory string

const (
	// CategoryAll is the filter value that matches every image. Images never carry it.
	CategoryAll           GalleryCategory = "all"
	CategoryCamping       GalleryCategory = "camping"
	CategoryFishing       GalleryCategory = "fishing"
	CategoryFacilities    GalleryCategory = "facilities"
	CategoryUncategorized GalleryCategory = "uncategorized"
)

// ParseGalleryCategory maps s to an image category, defaulting to CategoryUncategorized.
func ParseGalleryCategory(s string) GalleryCategory {
	switch c := GalleryCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryCamping, CategoryFishing, CategoryFacilities:
		return c
	default:
		return CategoryUncategorized
	}
}

// ParseGalleryFilter maps s to a filter value: "all" or any image category.
func ParseGalleryFilter(s string) (GalleryCategory, error) {
	switch c := GalleryCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CategoryAll:
		return CategoryAll, nil
	case CategoryCamping, CategoryFishing, CategoryFacilities, CategoryUncategorized:
		return c, nil
	default:
		return "", fmt.Errorf("unknown gallery category %q", s)
	}
}

// GalleryImage is one photo. ImageData is a data URI, an http(s) URL or bare base64.
type GalleryImage struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    GalleryCategory `json:"category"`
	ImageData   string          `json:"imageData"`
}

// Images is a fetched catalog in server order.
type Images []GalleryImage

// Normalize defaults categories and rejects missing or duplicate ids.
// Order is left untouched. A null list is rejected; an empty one is valid.
func (is *Images) Normalize() error {
	if *is == nil {
		return errors.New("gallery: list is null")
	}
	seen := make(map[string]struct{}, len(*is))
	for i := range *is {
		img := &(*is)[i]
		if img.ID == "" {
			return fmt.Errorf("gallery: entry %d has no id", i)
		}
		if _, dup := seen[img.ID]; dup {
			return fmt.Errorf("gallery: duplicate id %q", img.ID)
		}
		seen[img.ID] = struct{}{}
		img.Category = ParseGalleryCategory(string(img.Category))
	}
	return nil
}

// Clone returns a copy that shares nothing with is.
func (is Images) Clone() Images {
	if is == nil {
		return nil
	}
	return slices.Clone(is)
}
