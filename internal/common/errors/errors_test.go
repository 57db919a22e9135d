package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBPMNError_Retryable(t *testing.T) {
	stdErr := NewAccountProvisioningFailedError("cust-1", fmt.Errorf("connection reset"))
	stdErr.WithMetadata("attempt", 2)

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "ACCOUNT_PROVISIONING_FAILED", bpmnErr.Code)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)
	assert.Equal(t, 2, bpmnErr.ErrorVariables["attempt"])
	assert.Equal(t, "ACCOUNT_PROVISIONING_FAILED", bpmnErr.ErrorVariables["originalErrorCode"])
}

func TestConvertToBPMNError_CollisionMapsToProvisioning(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewAccountNumberCollisionError("cust-1", 3))

	assert.Equal(t, "ACCOUNT_PROVISIONING_FAILED", bpmnErr.Code)
	assert.Equal(t, 2, bpmnErr.Retries)
}

func TestConvertToBPMNError_BusinessErrorHasNoRetries(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewProfileValidationFailedError("email: REQUIRED"))

	assert.Equal(t, "PROFILE_VALIDATION_FAILED", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)
	assert.Equal(t, 0, bpmnErr.Retries)

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "Customer data validation failed", vars["errorMessage"])
	assert.Equal(t, "email: REQUIRED", vars["errorDetails"])
}

func TestNormalize(t *testing.T) {
	t.Run("wrapped standard error is unwrapped", func(t *testing.T) {
		inner := NewAccountNotFoundError("123456-1234")
		wrapped := fmt.Errorf("activate: %w", inner)

		got := Normalize(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, ErrCodeAccountNotFound, got.Code)
	})

	t.Run("plain error becomes internal error", func(t *testing.T) {
		got := Normalize(fmt.Errorf("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.Equal(t, "boom", got.Details)
		assert.False(t, got.Retryable)
	})
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeExtractionFailed, "EXTRACTION"},
		{ErrCodeDocumentScanningFailed, "EXTRACTION"},
		{ErrCodeAccountNumberCollision, "ACCOUNT"},
		{ErrCodeQueryTimeout, "DATABASE"},
		{ErrCodeDocumentIndexingFailed, "SEARCH"},
		{ErrCodeNotificationSendFailed, "NOTIFICATION"},
		{ErrCodeProfileValidationFailed, "VALIDATION"},
		{ErrCodeInternal, "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeExtractionFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeQueryTimeout))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidJobInput))
	assert.False(t, IsRetryableErrorCode(ErrCodeAccountNotFound))
}
