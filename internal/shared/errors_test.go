package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewCallFailed(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to call LLM provider")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestServiceErrorWithoutCause(t *testing.T) {
	err := NewEmptyResponse()
	assert.Equal(t, "empty response from LLM", err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestServiceErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), NewMalformedResponse(errors.New("bad shape")))

	var svcErr *ServiceError
	require.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, KindMalformedResponse, svcErr.Kind)
}

func TestErrorKindCodes(t *testing.T) {
	assert.Equal(t, "call_failed", KindCallFailed.Code())
	assert.Equal(t, "empty_response", KindEmptyResponse.Code())
	assert.Equal(t, "malformed_response", KindMalformedResponse.Code())
}
