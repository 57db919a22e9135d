// internal/workers/onboarding/provision-account/provisioner.go
package provisionaccount

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/common/metrics"
	"onboarding-workers/internal/models"
)

// GenerateAccountNumber joins the last six digits of the epoch second with a
// random four digit suffix. Numbers are only probably unique; Create guards
// against collisions.
func GenerateAccountNumber() string {
	return fmt.Sprintf("%06d%04d", time.Now().Unix()%1_000_000, 1000+rand.Intn(9000))
}

type Provisioner struct {
	store       Store
	maxAttempts int
	generate    func() string
	now         func() time.Time
	logger      logger.Logger
}

func NewProvisioner(store Store, maxAttempts int, log logger.Logger) *Provisioner {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Provisioner{
		store:       store,
		maxAttempts: maxAttempts,
		generate:    GenerateAccountNumber,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      log,
	}
}

// CreateAccount persists a Pending, zero-balance account for customerID.
// A taken number is regenerated up to maxAttempts times.
func (p *Provisioner) CreateAccount(ctx context.Context, customerID string, accountType models.AccountType) (*models.BankAccount, error) {
	if accountType == "" {
		accountType = models.AccountChecking
	}
	if !accountType.IsValid() {
		return nil, apperrors.NewInvalidJobInputError("unsupported accountType: " + string(accountType))
	}

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		now := p.now()
		account := models.BankAccount{
			AccountNumber: p.generate(),
			AccountType:   accountType,
			CustomerID:    customerID,
			Balance:       0,
			Status:        models.AccountStatusPending,
			CreatedAt:     now,
			LastModified:  now,
		}

		err := p.store.Create(ctx, account)
		if errors.Is(err, ErrAccountExists) {
			metrics.AccountNumberCollisions.Inc()
			p.logger.Warn("account number already taken, regenerating", map[string]interface{}{
				"customerId":    customerID,
				"accountNumber": account.AccountNumber,
				"attempt":       attempt,
			})
			continue
		}
		if err != nil {
			return nil, storeError(ctx, "create account", apperrors.NewAccountProvisioningFailedError(customerID, err))
		}

		metrics.AccountsProvisioned.WithLabelValues(string(accountType), string(account.Status)).Inc()
		p.logger.Info("bank account created", map[string]interface{}{
			"customerId":    customerID,
			"accountNumber": account.AccountNumber,
			"accountType":   accountType,
		})
		return &account, nil
	}

	return nil, apperrors.NewAccountNumberCollisionError(customerID, p.maxAttempts)
}

// Activate moves the account to Active and returns the stored record.
func (p *Provisioner) Activate(ctx context.Context, accountNumber string) (*models.BankAccount, error) {
	err := p.store.UpdateStatus(ctx, accountNumber, models.AccountStatusActive, p.now())
	if errors.Is(err, ErrAccountNotFound) {
		return nil, apperrors.NewAccountNotFoundError(accountNumber)
	}
	if err != nil {
		return nil, storeError(ctx, "activate account",
			apperrors.NewAccountActivationFailedError(accountNumber).WithMetadata("cause", err.Error()))
	}

	account, err := p.store.Get(ctx, accountNumber)
	if err != nil {
		return nil, p.lookupError(ctx, accountNumber, err)
	}

	metrics.AccountsProvisioned.WithLabelValues(string(account.AccountType), string(account.Status)).Inc()
	return account, nil
}

// ActivateAccount reports whether activation succeeded. Failures are logged,
// never returned.
func (p *Provisioner) ActivateAccount(ctx context.Context, accountNumber string) bool {
	if _, err := p.Activate(ctx, accountNumber); err != nil {
		p.logger.Error("account activation failed", map[string]interface{}{
			"accountNumber": accountNumber,
			"error":         err,
		})
		return false
	}
	p.logger.Info("bank account activated", map[string]interface{}{
		"accountNumber": accountNumber,
	})
	return true
}

func (p *Provisioner) GetAccount(ctx context.Context, accountNumber string) (*models.BankAccount, error) {
	account, err := p.store.Get(ctx, accountNumber)
	if err != nil {
		return nil, p.lookupError(ctx, accountNumber, err)
	}
	return account, nil
}

func (p *Provisioner) ListCustomerAccounts(ctx context.Context, customerID string) ([]models.BankAccount, error) {
	accounts, err := p.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, storeError(ctx, "list accounts", apperrors.NewDatabaseConnectionFailedError(err))
	}
	return accounts, nil
}

func (p *Provisioner) lookupError(ctx context.Context, accountNumber string, err error) error {
	if errors.Is(err, ErrAccountNotFound) {
		return apperrors.NewAccountNotFoundError(accountNumber)
	}
	return storeError(ctx, "get account", apperrors.NewDatabaseConnectionFailedError(err))
}

// storeError reports a deadline hit as a query timeout, otherwise fallback.
func storeError(ctx context.Context, operation string, fallback error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.NewQueryTimeoutError(operation)
	}
	return fallback
}
