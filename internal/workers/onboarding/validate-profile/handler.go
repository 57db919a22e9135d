// internal/workers/onboarding/validate-profile/handler.go
package validateprofile

import (
	"context"
	"encoding/json"
	"strings"

	"onboarding-workers/internal/common/camunda"
	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-customer-profile"
)

type Handler struct {
	config     *Config
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		logger:     scoped,
		errHandler: apperrors.NewErrorHandler(scoped),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errHandler.HandleJobError(context.Background(), client, job, apperrors.NewInvalidJobInputError(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.errHandler.HandleJobError(ctx, client, job, err)
		return
	}

	camunda.CompleteJob(context.Background(), client, job, output, h.logger)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.CustomerProfile == nil {
		return nil, apperrors.NewInvalidJobInputError("customerProfile is required")
	}

	valid, reasons := ValidateProfile(*input.CustomerProfile)
	if !valid {
		fields := Fields(reasons)
		h.logger.Info("customer profile rejected", map[string]interface{}{
			"customerId": input.CustomerProfile.ID,
			"fields":     fields,
		})
		if h.config.FailOnInvalid {
			return nil, apperrors.NewProfileValidationFailedError(strings.Join(fields, ", "))
		}
	}

	return &Output{Valid: valid, Reasons: reasons}, nil
}
