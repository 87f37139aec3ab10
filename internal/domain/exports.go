package domain

import (
	interfaces "birchwood/internal/domain/interfaces"
	types "birchwood/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Resource        = types.Resource
	ContentRequest  = types.ContentRequest
	ErrorKind       = types.ErrorKind
	ContactInfo     = types.ContactInfo
	RuleCategory    = types.RuleCategory
	SiteRule        = types.SiteRule
	Rules           = types.Rules
	Pricing         = types.Pricing
	CampingInfo     = types.CampingInfo
	FishingInfo     = types.FishingInfo
	GalleryCategory = types.GalleryCategory
	GalleryImage    = types.GalleryImage
	Images          = types.Images
)

// ContentResult is either a payload or a failure reason.
type ContentResult[T any] = types.ContentResult[T]

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ContentClient    = interfaces.ContentClient
	FallbackResolver = interfaces.FallbackResolver
	Normalizer       = interfaces.Normalizer
)

const (
	ResourceContact = types.ResourceContact
	ResourceRules   = types.ResourceRules
	ResourceCamping = types.ResourceCamping
	ResourceFishing = types.ResourceFishing
	ResourceGallery = types.ResourceGallery

	ErrNone               = types.ErrNone
	ErrNetworkUnavailable = types.ErrNetworkUnavailable
	ErrTimeout            = types.ErrTimeout
	ErrServerError        = types.ErrServerError
	ErrMalformedResponse  = types.ErrMalformedResponse

	RuleGeneral = types.RuleGeneral
	RuleCamping = types.RuleCamping
	RuleFishing = types.RuleFishing

	CategoryAll           = types.CategoryAll
	CategoryCamping       = types.CategoryCamping
	CategoryFishing       = types.CategoryFishing
	CategoryFacilities    = types.CategoryFacilities
	CategoryUncategorized = types.CategoryUncategorized
)

// NewContentRequest validates r and returns a request for it.
func NewContentRequest(r Resource) (ContentRequest, error) { return types.NewContentRequest(r) }

// ParseGalleryFilter maps a filter bar key to a category; "" selects all.
func ParseGalleryFilter(s string) (GalleryCategory, error) { return types.ParseGalleryFilter(s) }

// Success wraps a decoded payload.
func Success[T any](payload T) ContentResult[T] { return types.Success(payload) }

// Failure records why a fetch failed.
func Failure[T any](kind ErrorKind, cause error) ContentResult[T] {
	return types.Failure[T](kind, cause)
}
