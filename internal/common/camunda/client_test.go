package camunda

import (
	"fmt"
	"testing"
	"time"

	"onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableZeebeError(t *testing.T) {
	assert.True(t, isRetryableZeebeError(fmt.Errorf("rpc error: code = Unavailable desc = connection refused")))
	assert.True(t, isRetryableZeebeError(fmt.Errorf("context deadline exceeded")))
	assert.False(t, isRetryableZeebeError(fmt.Errorf("permission denied")))
}

func TestMapZeebeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode errors.ErrorCode
	}{
		{"timeout", fmt.Errorf("deadline exceeded"), "TIMEOUT_ERROR"},
		{"not found", fmt.Errorf("process not found"), "RESOURCE_NOT_FOUND"},
		{"other", fmt.Errorf("unavailable"), "EXTERNAL_SERVICE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapZeebeError(tt.err, "topology", 2)
			std := errors.Normalize(mapped)
			assert.Equal(t, tt.wantCode, std.Code)
			assert.Contains(t, std.Details+std.Message, "topology")
		})
	}
}

func TestBackoff(t *testing.T) {
	retry := &RetryConfig{MaxRetries: 5, BaseDelay: time.Second, MaxDelay: 5 * time.Second}

	assert.Equal(t, time.Second, backoff(retry, 0))
	assert.Equal(t, 2*time.Second, backoff(retry, 1))
	assert.Equal(t, 4*time.Second, backoff(retry, 2))
	assert.Equal(t, 5*time.Second, backoff(retry, 3))
	assert.Equal(t, 5*time.Second, backoff(retry, 62))
}

func TestInstrument_CallsHandler(t *testing.T) {
	called := false
	job := entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 42, Type: "classify-document"}}

	handler := Instrument("classify-document", nil, func(client worker.JobClient, j entities.Job) {
		called = true
		assert.Equal(t, int64(42), j.Key)
	})
	handler(nil, job)

	require.True(t, called)
}

func TestRegistrar_CountStartsEmpty(t *testing.T) {
	r := NewRegistrar(nil, &observability.Observability{}, logger.NewTestLogger(t))
	assert.Equal(t, 0, r.Count())
	assert.NotPanics(t, r.Close)
}
