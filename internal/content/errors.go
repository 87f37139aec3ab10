package content

import (
	"context"
	"errors"
	"fmt"
	"net"

	"birchwood/internal/domain"
)

// ErrUnknownResource is returned for requests that name no endpoint.
var ErrUnknownResource = errors.New("unknown resource")

// FetchError describes a failed fetch.
type FetchError struct {
	Kind      domain.ErrorKind
	Resource  domain.Resource
	Status    int // HTTP status for ServerError, else 0
	RequestID string
	Err       error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("content get %s: %s: status %d", e.Resource, e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("content get %s: %s: %v", e.Resource, e.Kind, e.Err)
	}
	return fmt.Sprintf("content get %s: %s", e.Resource, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from err. Errors that did not come from
// this package are treated as network failures.
func KindOf(err error) domain.ErrorKind {
	if err == nil {
		return domain.ErrNone
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return classifyTransport(err)
}

// classifyTransport maps an error from http.Client.Do or a body read.
func classifyTransport(err error) domain.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.ErrTimeout
	}
	return domain.ErrNetworkUnavailable
}

// describeTransport returns a short operator-facing explanation of err.
func describeTransport(err error) string {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "network timeout: connection timed out"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("dns error: cannot resolve hostname (%s)", dnsErr.Name)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" {
			return "network error: cannot connect to server"
		}
		return fmt.Sprintf("network error: %s", opErr.Op)
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timeout: operation took too long"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	}
	return "network error"
}
