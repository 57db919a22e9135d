// internal/workers/onboarding/classify-document/handler.go
package classifydocument

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
	TaskType = "classify-document"
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

// Execute classifies a single filename, a list of filenames, or both.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.Filename) == "" && len(input.Filenames) == 0 {
		return nil, apperrors.NewInvalidJobInputError("filename or filenames is required")
	}

	output := &Output{}
	if input.Filename != "" {
		output.DocumentKind = Classify(input.Filename)
	}

	for _, name := range input.Filenames {
		output.Classifications = append(output.Classifications, Classification{
			Filename:     name,
			DocumentKind: Classify(name),
		})
	}

	h.logger.Debug("documents classified", map[string]interface{}{
		"documentKind": output.DocumentKind,
		"count":        len(output.Classifications),
	})

	return output, nil
}
