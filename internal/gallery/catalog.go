// Package gallery holds the photo catalog behind the gallery screen.
//
// The catalog keeps the fetched images in server order, derives the visible
// subset for the selected category and tracks which image, if any, is open
// in the viewer. The viewer only ever holds an image id: a refresh that
// replaces the catalog automatically closes a viewer whose image is gone.
//
// Image bytes are decoded lazily on first access and thumbnails are rendered
// on demand; both are memoized per image payload.
package gallery

import (
	"fmt"
	"sync"

	"birchwood/internal/domain"
)

// EmptyReason explains why the visible list is empty.
// The screen renders every non-None reason as "no images yet", but the causes
// stay distinct in state.
type EmptyReason int

const (
	EmptyNone        EmptyReason = iota // something to show
	EmptyUnavailable                    // the catalog fetch failed and the screen degraded
	EmptyCatalog                        // the service returned no images
	EmptyFilter                         // images exist but none match the selected category
)

func (r EmptyReason) String() string {
	switch r {
	case EmptyNone:
		return "none"
	case EmptyUnavailable:
		return "unavailable"
	case EmptyCatalog:
		return "catalog"
	case EmptyFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// CategoryOption is one entry of the filter bar.
type CategoryOption struct {
	Key   domain.GalleryCategory
	Label string
}

// Categories returns the filter bar entries in display order.
func Categories() []CategoryOption {
	return []CategoryOption{
		{Key: domain.CategoryAll, Label: "All"},
		{Key: domain.CategoryCamping, Label: "Camping"},
		{Key: domain.CategoryFishing, Label: "Fishing"},
		{Key: domain.CategoryFacilities, Label: "Facilities"},
	}
}

// ViewState is a snapshot of the catalog.
type ViewState struct {
	Images           domain.Images
	SelectedCategory domain.GalleryCategory
	OpenImageID      string
	LoadError        domain.ErrorKind
}

// Catalog is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	images   domain.Images
	index    map[string]int
	selected domain.GalleryCategory
	openID   string
	loadErr  domain.ErrorKind

	cache *imageCache
}

// NewCatalog returns an empty catalog showing all categories.
func NewCatalog() *Catalog {
	return &Catalog{
		index:    map[string]int{},
		selected: domain.CategoryAll,
		cache:    newImageCache(),
	}
}

// Load replaces the catalog with images. An open image that is no longer
// present is closed and decoded data of vanished images is dropped.
func (c *Catalog) Load(images domain.Images) {
	imgs := images.Clone()
	index := make(map[string]int, len(imgs))
	for i, img := range imgs {
		index[img.ID] = i
	}

	c.mu.Lock()
	c.images = imgs
	c.index = index
	c.loadErr = domain.ErrNone
	if _, ok := index[c.openID]; !ok {
		c.openID = ""
	}
	c.mu.Unlock()

	c.cache.retain(imgs)
}

// LoadFailed empties the catalog because the fetch failed with kind.
func (c *Catalog) LoadFailed(kind domain.ErrorKind) {
	if kind == domain.ErrNone {
		kind = domain.ErrServerError
	}
	c.mu.Lock()
	c.images = nil
	c.index = map[string]int{}
	c.loadErr = kind
	c.openID = ""
	c.mu.Unlock()

	c.cache.retain(nil)
}

// Len returns the number of loaded images.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// FilterBy returns the images of category cat in load order. CategoryAll
// returns every image. The result is a fresh slice.
func (c *Catalog) FilterBy(cat domain.GalleryCategory) domain.Images {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filter(c.images, cat)
}

func filter(images domain.Images, cat domain.GalleryCategory) domain.Images {
	if cat == domain.CategoryAll {
		return images.Clone()
	}
	out := domain.Images{}
	for _, img := range images {
		if img.Category == cat {
			out = append(out, img)
		}
	}
	return out
}

// SetCategory selects the filter. cat must be CategoryAll or an image category.
func (c *Catalog) SetCategory(cat domain.GalleryCategory) error {
	parsed, err := domain.ParseGalleryFilter(string(cat))
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.selected = parsed
	c.mu.Unlock()
	return nil
}

// Category returns the selected filter.
func (c *Catalog) Category() domain.GalleryCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

// Visible returns the images of the selected category.
func (c *Catalog) Visible() domain.Images {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filter(c.images, c.selected)
}

// Empty reports why nothing is visible, or EmptyNone.
func (c *Catalog) Empty() EmptyReason {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.loadErr != domain.ErrNone:
		return EmptyUnavailable
	case len(c.images) == 0:
		return EmptyCatalog
	case len(filter(c.images, c.selected)) == 0:
		return EmptyFilter
	default:
		return EmptyNone
	}
}

// Open shows image id in the viewer. Unknown ids are ignored; the return
// value reports whether the viewer now shows id.
func (c *Catalog) Open(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[id]; !ok {
		return false
	}
	c.openID = id
	return true
}

// Close hides the viewer.
func (c *Catalog) Close() {
	c.mu.Lock()
	c.openID = ""
	c.mu.Unlock()
}

// OpenImage returns the image shown in the viewer.
func (c *Catalog) OpenImage() (domain.GalleryImage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[c.openID]
	if !ok || c.openID == "" {
		return domain.GalleryImage{}, false
	}
	return c.images[i], true
}

// ViewState returns a snapshot of the catalog.
func (c *Catalog) ViewState() ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	open := c.openID
	if _, ok := c.index[open]; !ok {
		open = ""
	}
	return ViewState{
		Images:           c.images.Clone(),
		SelectedCategory: c.selected,
		OpenImageID:      open,
		LoadError:        c.loadErr,
	}
}

func (c *Catalog) lookup(id string) (domain.GalleryImage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return domain.GalleryImage{}, fmt.Errorf("gallery: no image %q", id)
	}
	return c.images[i], nil
}
