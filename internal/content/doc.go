// Package content provides the HTTP implementation of domain.ContentClient.
//
// The content service is a read-only JSON API exposing the contact details,
// site rules, camping and fishing pages and the photo gallery. This package
// issues exactly one GET per fetch and never retries: a failure is terminal
// for that attempt and the caller decides whether to fetch again.
//
// Every failure is reported as a *FetchError whose Kind is one of
// NetworkUnavailable, Timeout, ServerError or MalformedResponse. Fetch wraps
// a call into a domain.ContentResult so callers never deal with partially
// decoded payloads.
//
// All requests accept a context for cancellation and are additionally bounded
// by the client timeout, so a fetch can never hang indefinitely.
package content
