// internal/workers/onboarding/validate-document/handler.go
package validatedocument

import (
	"context"
	"encoding/json"

	"onboarding-workers/internal/common/camunda"
	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/common/metrics"
	"onboarding-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-document"
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

// Execute resolves every supplied document. A rejected document is an
// outcome, not a job failure.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Document == nil && len(input.Documents) == 0 {
		return nil, apperrors.NewInvalidJobInputError("document or documents is required")
	}

	output := &Output{AllVerified: true}

	if input.Document != nil {
		doc := *input.Document
		h.resolve(&doc, output)
		output.Document = &doc
	}

	if len(input.Documents) > 0 {
		output.Documents = make([]models.ProcessedDocument, len(input.Documents))
		copy(output.Documents, input.Documents)
		for i := range output.Documents {
			h.resolve(&output.Documents[i], output)
		}
	}

	return output, nil
}

func (h *Handler) resolve(doc *models.ProcessedDocument, output *Output) {
	if doc.VerificationStatus == "" {
		doc.VerificationStatus = models.VerificationPending
	}

	missing := MissingFields(*doc)
	doc.Resolve(len(missing) == 0)

	if doc.VerificationStatus != models.VerificationVerified {
		output.AllVerified = false
	}
	if doc.VerificationStatus == models.VerificationRejected {
		output.RejectedCount++
		h.logger.Info("document rejected", map[string]interface{}{
			"documentId":   doc.ID,
			"documentKind": doc.Kind,
			"missing":      missing,
		})
	}

	metrics.OnboardingDocuments.WithLabelValues(string(doc.Kind), string(doc.VerificationStatus)).Inc()
}
