// Package errs defines the error classes a check run can fail with.
//
// Call sites wrap these sentinels with github.com/pkg/errors so the message
// carries context while errors.Is still reports the class.
package errs

import "github.com/pkg/errors"

var (
	// ErrDataUnavailable means a provider returned no usable samples.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrMalformedData means a provider payload could not be parsed.
	ErrMalformedData = errors.New("malformed data")
	// ErrProvider means an upstream API answered with a failure.
	ErrProvider = errors.New("provider error")
	// ErrDelivery means a notification transport rejected the send.
	ErrDelivery = errors.New("delivery error")
	// ErrConfig means the configuration is incomplete or invalid.
	ErrConfig = errors.New("invalid config")
)

// Class returns a short label for the error class of err, or "unknown".
func Class(err error) string {
	switch {
	case errors.Is(err, ErrDataUnavailable):
		return "DataUnavailable"
	case errors.Is(err, ErrMalformedData):
		return "MalformedData"
	case errors.Is(err, ErrProvider):
		return "ProviderError"
	case errors.Is(err, ErrDelivery):
		return "DeliveryError"
	case errors.Is(err, ErrConfig):
		return "ConfigError"
	default:
		return "unknown"
	}
}
