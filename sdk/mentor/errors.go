package mentor

import (
	"errors"
	"fmt"
)

// Kind classifies a failed request.
type Kind int

const (
	// KindNetwork means the backend was unreachable (transport error).
	KindNetwork Kind = iota
	// KindStatus means the backend answered with a non-2xx status.
	KindStatus
	// KindDecode means the response body was missing or not valid JSON.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network-unreachable"
	case KindStatus:
		return "non-2xx-status"
	case KindDecode:
		return "malformed-response"
	default:
		return "unknown"
	}
}

// APIError is the error type returned by every client method. Detail
// carries the backend-provided message on non-2xx responses when the
// body included one.
type APIError struct {
	Kind       Kind
	StatusCode int
	Detail     string
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Detail != "" {
			return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
		}
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure classification from an error returned by
// this package. Unrecognized errors report as KindNetwork.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}
