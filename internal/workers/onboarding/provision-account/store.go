// internal/workers/onboarding/provision-account/store.go
package provisionaccount

import (
	"context"
	"errors"
	"time"

	"onboarding-workers/internal/models"
)

var (
	ErrAccountExists   = errors.New("ACCOUNT_EXISTS")
	ErrAccountNotFound = errors.New("ACCOUNT_NOT_FOUND")
)

// Store persists bank accounts keyed by account number.
type Store interface {
	// Create inserts account unless the number is taken, in which case it
	// returns ErrAccountExists.
	Create(ctx context.Context, account models.BankAccount) error
	Put(ctx context.Context, account models.BankAccount) error
	Get(ctx context.Context, accountNumber string) (*models.BankAccount, error)
	UpdateStatus(ctx context.Context, accountNumber string, status models.AccountStatus, modified time.Time) error
	ListByCustomer(ctx context.Context, customerID string) ([]models.BankAccount, error)
}
