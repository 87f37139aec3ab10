package interfaces

import (
	"context"

	domaintypes "birchwood/internal/domain/types"
)

// ContentClient is how we talk to the content service.
//
// Get performs one GET for req and decodes the JSON body into out. A non-nil
// error carries a domaintypes.ErrorKind that callers can classify.
type ContentClient interface {
	Get(ctx context.Context, req domaintypes.ContentRequest, out any) error
}

// Normalizer is implemented by payloads that validate or reshape themselves
// after decoding. A non-nil error marks the payload malformed.
type Normalizer interface {
	Normalize() error
}
