// internal/workers/onboarding/provision-account/handler.go
package provisionaccount

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
	TaskType = "provision-bank-account"
)

type Handler struct {
	config      *Config
	provisioner *Provisioner
	logger      logger.Logger
	errHandler  *apperrors.ErrorHandler
}

func NewHandler(config *Config, provisioner *Provisioner, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:      config,
		provisioner: provisioner,
		logger:      scoped,
		errHandler:  apperrors.NewErrorHandler(scoped),
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

// Execute opens a Pending account. The customer id may come from the
// compiled profile when the process does not map it separately.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	customerID := input.CustomerID
	if customerID == "" && input.CustomerProfile != nil {
		customerID = input.CustomerProfile.ID
	}
	if customerID == "" {
		return nil, apperrors.NewInvalidJobInputError("customerId is required")
	}

	accountType := input.AccountType
	if accountType == "" {
		accountType = h.config.DefaultAccountType
	}

	account, err := h.provisioner.CreateAccount(ctx, customerID, accountType)
	if err != nil {
		return nil, err
	}

	return &Output{
		BankAccount:   *account,
		AccountNumber: account.AccountNumber,
		AccountStatus: account.Status,
	}, nil
}
