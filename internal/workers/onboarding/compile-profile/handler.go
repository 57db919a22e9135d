// internal/workers/onboarding/compile-profile/handler.go
package compileprofile

import (
	"context"
	"encoding/json"

	"onboarding-workers/internal/common/camunda"
	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "compile-customer-profile"
)

type Handler struct {
	config     *Config
	compiler   *Compiler
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		compiler:   NewCompiler(config.Placeholders),
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

// Execute never fails on content: an empty document list yields a mostly empty profile.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	profile := h.compiler.Compile(input.Documents)

	h.logger.Debug("profile compiled", map[string]interface{}{
		"customerId":    profile.ID,
		"documentCount": len(profile.Documents),
	})

	return &Output{
		CustomerProfile: profile,
		CustomerID:      profile.ID,
		CustomerName:    profile.FullName(),
	}, nil
}
