package content

import (
	"context"

	"birchwood/internal/domain"
)

// Fetch performs one request through c and returns a typed result.
// The payload is only exposed when decoding and normalization succeeded.
func Fetch[T any](ctx context.Context, c domain.ContentClient, req domain.ContentRequest) domain.ContentResult[T] {
	var out T
	if err := c.Get(ctx, req, &out); err != nil {
		return domain.Failure[T](KindOf(err), err)
	}
	return domain.Success(out)
}
