package screen

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"birchwood/internal/content"
	"birchwood/internal/debuglog"
	"birchwood/internal/domain"
	"birchwood/internal/fallback"
)

// Outcome is what a Source settled on. Data is always displayable.
type Outcome[T any] struct {
	Data     T
	Err      domain.ErrorKind // ErrNone when Data came from the service
	Fallback bool             // Data is the compiled-in fallback
}

// Source performs one fetch cycle for a screen.
type Source[T any] func(ctx context.Context) Outcome[T]

// ResourceSource fetches res through client. On failure it substitutes the
// fallback from fr when one exists and the zero T otherwise.
func ResourceSource[T any](client domain.ContentClient, fr domain.FallbackResolver, res domain.Resource, log *slog.Logger) Source[T] {
	log = debuglog.Component(log, "screen")
	return func(ctx context.Context) Outcome[T] {
		var result domain.ContentResult[T]
		req, err := domain.NewContentRequest(res)
		if err != nil {
			result = domain.Failure[T](domain.ErrServerError, err)
		} else {
			result = content.Fetch[T](ctx, client, req)
		}
		if v, ok := result.Payload(); ok {
			return Outcome[T]{Data: v}
		}

		out := Outcome[T]{Err: result.Reason()}
		if fb, ok := fallback.Lookup[T](fr, res); ok {
			out.Data, out.Fallback = fb, true
		}
		attrs := []any{"resource", res, "kind", out.Err, "fallback", out.Fallback}
		var fe *content.FetchError
		if errors.As(result.Cause(), &fe) {
			attrs = append(attrs, "request_id", fe.RequestID)
			if fe.Status != 0 {
				attrs = append(attrs, "status", fe.Status)
			}
		}
		attrs = append(attrs, "err", result.Cause())
		log.Warn("content fetch failed", attrs...)
		return out
	}
}

// Join runs a and b concurrently and merges their outcomes with combine.
// Each side settles on its own, so one side failing never blocks the other.
// The merged Err is the first non-empty of a's and b's.
func Join[A, B, T any](a Source[A], b Source[B], combine func(Outcome[A], Outcome[B]) T) Source[T] {
	return func(ctx context.Context) Outcome[T] {
		var (
			g    errgroup.Group
			outA Outcome[A]
			outB Outcome[B]
		)
		g.Go(func() error { outA = a(ctx); return nil })
		g.Go(func() error { outB = b(ctx); return nil })
		_ = g.Wait()

		err := outA.Err
		if err == domain.ErrNone {
			err = outB.Err
		}
		return Outcome[T]{
			Data:     combine(outA, outB),
			Err:      err,
			Fallback: outA.Fallback || outB.Fallback,
		}
	}
}
