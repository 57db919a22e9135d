// internal/workers/onboarding/activate-account/models.go
package activateaccount

import "onboarding-workers/internal/models"

type Input struct {
	AccountNumber string `json:"accountNumber"`
}

type Output struct {
	BankAccount   models.BankAccount   `json:"bankAccount"`
	AccountStatus models.AccountStatus `json:"accountStatus"`
	Activated     bool                 `json:"activated"`
}
