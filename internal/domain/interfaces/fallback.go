package interfaces

import domaintypes "birchwood/internal/domain/types"

// FallbackResolver supplies compiled-in content for resources that must
// never render empty.
type FallbackResolver interface {
	// Has reports whether resource r has a fallback.
	Has(r domaintypes.Resource) bool
	// Resolve returns a private copy of the fallback for r.
	Resolve(r domaintypes.Resource) (any, bool)
}
