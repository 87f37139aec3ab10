// Package fallback decides which resources ship with hardcoded content and
// hands out copies of it when a fetch fails.
//
// Contact details and site rules are safety-critical: a visitor must always
// be able to reach the business, so they have defaults. Camping, fishing and
// gallery content has none and degrades to an empty page instead of showing
// stale copy.
package fallback

import (
	"fmt"

	"birchwood/internal/domain"
)

// Defaults is the fallback data. A nil field means the resource has no fallback.
type Defaults struct {
	Contact *domain.ContactInfo
	Rules   domain.Rules
}

// Resolver implements domain.FallbackResolver over a fixed Defaults value.
type Resolver struct {
	contact *domain.ContactInfo
	rules   domain.Rules
}

// New validates d and returns a resolver owning a private copy of it.
func New(d Defaults) (*Resolver, error) {
	r := &Resolver{}
	if d.Contact != nil {
		c := d.Contact.Clone()
		if err := c.Normalize(); err != nil {
			return nil, fmt.Errorf("fallback contact: %w", err)
		}
		r.contact = &c
	}
	if d.Rules != nil {
		rules := d.Rules.Clone()
		if err := rules.Normalize(); err != nil {
			return nil, fmt.Errorf("fallback rules: %w", err)
		}
		r.rules = rules
	}
	return r, nil
}

// Has reports whether res has a fallback.
func (r *Resolver) Has(res domain.Resource) bool {
	switch res {
	case domain.ResourceContact:
		return r.contact != nil
	case domain.ResourceRules:
		return r.rules != nil
	default:
		return false
	}
}

// Resolve returns a copy of the fallback for res.
func (r *Resolver) Resolve(res domain.Resource) (any, bool) {
	if !r.Has(res) {
		return nil, false
	}
	switch res {
	case domain.ResourceContact:
		return r.contact.Clone(), true
	case domain.ResourceRules:
		return r.rules.Clone(), true
	}
	return nil, false
}

// Lookup resolves res through fr and asserts the fallback is a T.
// A fallback of another type is reported as missing.
func Lookup[T any](fr domain.FallbackResolver, res domain.Resource) (T, bool) {
	var zero T
	if fr == nil {
		return zero, false
	}
	v, ok := fr.Resolve(res)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

var _ domain.FallbackResolver = (*Resolver)(nil)
