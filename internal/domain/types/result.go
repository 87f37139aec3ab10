package types

// ErrorKind classifies why a fetch failed. The zero value means no failure.
type ErrorKind string

const (
	ErrNone               ErrorKind = ""
	ErrNetworkUnavailable ErrorKind = "network_unavailable"
	ErrTimeout            ErrorKind = "timeout"
	ErrServerError        ErrorKind = "server_error"
	ErrMalformedResponse  ErrorKind = "malformed_response"
)

// String returns the string form of the kind.
func (k ErrorKind) String() string {
	if k == ErrNone {
		return "none"
	}
	return string(k)
}

// ContentResult is either a successful payload or a failure reason, never both.
type ContentResult[T any] struct {
	payload T
	reason  ErrorKind
	cause   error
}

// Success wraps a decoded payload.
func Success[T any](payload T) ContentResult[T] {
	return ContentResult[T]{payload: payload}
}

// Failure records why a fetch failed. cause is kept for diagnostics only.
// An empty kind is treated as ErrServerError so a failure is never mistaken for success.
func Failure[T any](kind ErrorKind, cause error) ContentResult[T] {
	if kind == ErrNone {
		kind = ErrServerError
	}
	return ContentResult[T]{reason: kind, cause: cause}
}

// OK reports whether the result is a success.
func (r ContentResult[T]) OK() bool { return r.reason == ErrNone }

// Payload returns the payload and true on success, or the zero value and false.
func (r ContentResult[T]) Payload() (T, bool) {
	if !r.OK() {
		var zero T
		return zero, false
	}
	return r.payload, true
}

// Reason returns the failure kind, or ErrNone on success.
func (r ContentResult[T]) Reason() ErrorKind { return r.reason }

// Cause returns the underlying error of a failure.
func (r ContentResult[T]) Cause() error { return r.cause }
