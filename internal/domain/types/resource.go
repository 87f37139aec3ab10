package types

import "fmt"

// Resource names a piece of content served by the content service.
type Resource string

const (
	ResourceContact Resource = "home-contact"
	ResourceRules   Resource = "rules"
	ResourceCamping Resource = "camping"
	ResourceFishing Resource = "fishing"
	ResourceGallery Resource = "gallery"
)

var resourcePaths = map[Resource]string{
	ResourceContact: "/api/contact",
	ResourceRules:   "/api/rules",
	ResourceCamping: "/api/camping",
	ResourceFishing: "/api/fishing",
	ResourceGallery: "/api/gallery",
}

// Resources lists every known resource in a fixed order.
func Resources() []Resource {
	return []Resource{ResourceContact, ResourceRules, ResourceCamping, ResourceFishing, ResourceGallery}
}

// String returns the string form of the resource.
func (r Resource) String() string { return string(r) }

// Known reports whether r is served by the content service.
func (r Resource) Known() bool {
	_, ok := resourcePaths[r]
	return ok
}

// Path returns the endpoint path for r, or "" when r is unknown.
func (r Resource) Path() string { return resourcePaths[r] }

// ContentRequest identifies a single fetch. It is built per call and never mutated.
type ContentRequest struct {
	resource Resource
}

// NewContentRequest validates r and returns a request for it.
func NewContentRequest(r Resource) (ContentRequest, error) {
	if !r.Known() {
		return ContentRequest{}, fmt.Errorf("unknown resource %q", string(r))
	}
	return ContentRequest{resource: r}, nil
}

// Resource returns the requested resource.
func (q ContentRequest) Resource() Resource { return q.resource }

// Path returns the endpoint path of the requested resource.
func (q ContentRequest) Path() string { return q.resource.Path() }
