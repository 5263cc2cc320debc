package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Throttling(t *testing.T) {
	err := &smithy.GenericAPIError{Code: "Throttling", Message: "Rate exceeded"}

	pe := classify(err)

	assert.Equal(t, KindThrottled, pe.Kind)
	assert.Equal(t, "Throttling", pe.Code)
	assert.Equal(t, "Rate exceeded", pe.Message)
	assert.True(t, isThrottle(err))
}

func TestClassify_WrappedThrottling(t *testing.T) {
	err := fmt.Errorf("operation error AutoScaling: %w",
		&smithy.GenericAPIError{Code: "Throttling", Message: "Rate exceeded"})

	assert.True(t, isThrottle(err))
}

func TestClassify_OtherAPIError(t *testing.T) {
	err := &smithy.GenericAPIError{Code: "ValidationError", Message: "bad input"}

	pe := classify(err)

	assert.Equal(t, KindProviderError, pe.Kind)
	assert.Equal(t, "ValidationError", pe.Code)
	assert.False(t, isThrottle(err))
}

func TestClassify_NonAPIError(t *testing.T) {
	err := errors.New("connection reset")

	pe := classify(err)

	assert.Equal(t, KindProviderError, pe.Kind)
	assert.Empty(t, pe.Code)
	assert.Equal(t, "connection reset", pe.Message)
	assert.ErrorIs(t, pe, err)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "Throttled", KindThrottled.String())
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "MalformedResponse", KindMalformedResponse.String())
	assert.Equal(t, "ProviderError", KindProviderError.String())
}
