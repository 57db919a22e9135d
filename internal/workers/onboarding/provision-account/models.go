// internal/workers/onboarding/provision-account/models.go
package provisionaccount

import "onboarding-workers/internal/models"

type Input struct {
	CustomerID      string                  `json:"customerId"`
	AccountType     models.AccountType      `json:"accountType,omitempty"`
	CustomerProfile *models.CustomerProfile `json:"customerProfile,omitempty"`
}

type Output struct {
	BankAccount   models.BankAccount   `json:"bankAccount"`
	AccountNumber string               `json:"accountNumber"`
	AccountStatus models.AccountStatus `json:"accountStatus"`
}
