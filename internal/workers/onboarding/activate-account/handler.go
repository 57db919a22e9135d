// internal/workers/onboarding/activate-account/handler.go
package activateaccount

import (
	"context"
	"encoding/json"
	"strings"

	"onboarding-workers/internal/common/camunda"
	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/models"
	provisionaccount "onboarding-workers/internal/workers/onboarding/provision-account"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "activate-bank-account"
)

// Handler activates an account left Pending after manual document review.
type Handler struct {
	config      *Config
	provisioner *provisionaccount.Provisioner
	logger      logger.Logger
	errHandler  *apperrors.ErrorHandler
}

func NewHandler(config *Config, provisioner *provisionaccount.Provisioner, log logger.Logger) *Handler {
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

// Execute is idempotent: an already Active account completes with Activated=false.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	number := strings.TrimSpace(input.AccountNumber)
	if number == "" {
		return nil, apperrors.NewInvalidJobInputError("accountNumber is required")
	}

	current, err := h.provisioner.GetAccount(ctx, number)
	if err != nil {
		return nil, err
	}
	if current.Status == models.AccountStatusActive {
		return &Output{BankAccount: *current, AccountStatus: current.Status}, nil
	}
	if current.Status != models.AccountStatusPending {
		return nil, apperrors.NewBusinessRuleError("Account is not pending activation",
			"account "+number+" is "+string(current.Status))
	}

	account, err := h.provisioner.Activate(ctx, number)
	if err != nil {
		return nil, err
	}

	h.logger.Info("bank account activated", map[string]interface{}{
		"accountNumber": number,
		"customerId":    account.CustomerID,
	})

	return &Output{BankAccount: *account, AccountStatus: account.Status, Activated: true}, nil
}
