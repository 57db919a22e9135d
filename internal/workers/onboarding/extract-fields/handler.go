// internal/workers/onboarding/extract-fields/handler.go
package extractfields

import (
	"context"
	"encoding/json"
	"strings"

	"onboarding-workers/internal/common/camunda"
	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/models"
	classifydocument "onboarding-workers/internal/workers/onboarding/classify-document"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "extract-document-fields"
)

type Handler struct {
	config     *Config
	extractor  *Extractor
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, extractor *Extractor, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		extractor:  extractor,
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

	// Extract applies its own per-call timeout; the outer bound covers cache I/O.
	ctx, cancel := context.WithTimeout(context.Background(), 2*h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.errHandler.HandleJobError(ctx, client, job, err)
		return
	}

	camunda.CompleteJob(context.Background(), client, job, output, h.logger)
}

// Execute extracts fields from one document. The kind is inferred from the
// filename when the caller does not supply it.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.Filename) == "" {
		return nil, apperrors.NewInvalidJobInputError("filename is required")
	}

	kind := input.DocumentKind
	if kind == "" {
		kind = classifydocument.Classify(input.Filename)
	}
	if !kind.IsValid() {
		return nil, apperrors.NewInvalidJobInputError("unknown documentKind: " + string(kind))
	}

	fields := h.extractor.ExtractRaw(ctx, models.RawDocumentInput{
		Filename:    input.Filename,
		Content:     input.Content,
		ContentType: input.ContentType,
	}, kind)

	h.logger.Info("fields extracted", map[string]interface{}{
		"filename":     input.Filename,
		"documentKind": kind,
		"fieldCount":   len(fields),
	})

	return &Output{
		DocumentKind: kind,
		Fields:       fields,
		Extracted:    len(fields) > 0,
	}, nil
}
