package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrorKind classifies provider failures at the SDK boundary.
type ErrorKind int

const (
	KindProviderError ErrorKind = iota
	KindThrottled
	KindNotFound
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindThrottled:
		return "Throttled"
	case KindNotFound:
		return "NotFound"
	case KindMalformedResponse:
		return "MalformedResponse"
	default:
		return "ProviderError"
	}
}

// ProviderError is a provider-reported failure tagged with its kind.
// Code and Message carry the AWS error code and message when available.
type ProviderError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// throttlingCode is the only AWS error code given special handling.
const throttlingCode = "Throttling"

// classify converts an SDK error into a tagged ProviderError.
func classify(err error) *ProviderError {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		kind := KindProviderError
		if apiErr.ErrorCode() == throttlingCode {
			kind = KindThrottled
		}
		return &ProviderError{
			Kind:    kind,
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
	}
	return &ProviderError{
		Kind:    KindProviderError,
		Message: err.Error(),
		Err:     err,
	}
}

// isThrottle reports whether err is AWS rate limiting.
func isThrottle(err error) bool {
	return classify(err).Kind == KindThrottled
}
