// internal/workers/onboarding/process-batch/handler.go
package processbatch

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
	TaskType     = "process-customer-batch"
	ScanTaskType = "scan-documents"
)

type Handler struct {
	config       *Config
	orchestrator *Orchestrator
	logger       logger.Logger
	errHandler   *apperrors.ErrorHandler
}

func NewHandler(config *Config, orchestrator *Orchestrator, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		orchestrator: orchestrator,
		logger:       scoped,
		errHandler:   apperrors.NewErrorHandler(scoped),
	}
}

// Handle runs a full onboarding batch. Every ProcessingResult completes the
// job; the process branches on onboardingStatus.
func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.handle(client, job, func(ctx context.Context, input *Input) (interface{}, error) {
		return h.Execute(ctx, input)
	})
}

// HandleScan classifies and extracts without validating or provisioning.
func (h *Handler) HandleScan(client worker.JobClient, job entities.Job) {
	h.handle(client, job, func(ctx context.Context, input *Input) (interface{}, error) {
		return h.Scan(ctx, input)
	})
}

func (h *Handler) handle(client worker.JobClient, job entities.Job, execute func(context.Context, *Input) (interface{}, error)) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"jobType":     job.Type,
		"workflowKey": job.ProcessInstanceKey,
	})

	input, err := decodeInput([]byte(job.Variables))
	if err != nil {
		h.errHandler.HandleJobError(context.Background(), client, job, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := execute(ctx, input)
	if err != nil {
		h.errHandler.HandleJobError(ctx, client, job, err)
		return
	}

	camunda.CompleteJob(context.Background(), client, job, output, h.logger)
}

func decodeInput(variables []byte) (*Input, error) {
	result, err := inputSchema.ValidateJSON(variables)
	if err != nil {
		return nil, apperrors.NewInvalidJobInputError(err.Error())
	}
	if !result.Valid {
		return nil, apperrors.NewInvalidJobInputError(strings.Join(result.GetErrorMessages(), "; "))
	}

	var input Input
	if err := json.Unmarshal(variables, &input); err != nil {
		return nil, apperrors.NewInvalidJobInputError(err.Error())
	}
	return &input, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	accountType := input.AccountType
	if accountType == "" {
		accountType = h.config.DefaultAccountType
	}

	result := h.orchestrator.ProcessBatch(ctx, input.Documents, accountType)

	output := &Output{OnboardingResult: *result, Status: result.Status}
	if result.CustomerProfile != nil {
		output.CustomerID = result.CustomerProfile.ID
	}
	if result.BankAccount != nil {
		output.AccountNumber = result.BankAccount.AccountNumber
	}

	h.logger.Info("onboarding batch finished", map[string]interface{}{
		"status":        result.Status,
		"customerId":    output.CustomerID,
		"accountNumber": output.AccountNumber,
		"documentCount": len(input.Documents),
	})
	return output, nil
}

func (h *Handler) Scan(ctx context.Context, input *Input) (*ScanOutput, error) {
	if len(input.Documents) == 0 {
		return nil, apperrors.NewDocumentScanningFailedError("no documents supplied")
	}
	return &ScanOutput{Documents: h.orchestrator.ScanOnly(ctx, input.Documents)}, nil
}
