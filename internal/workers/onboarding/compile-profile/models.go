// internal/workers/onboarding/compile-profile/models.go
package compileprofile

import "onboarding-workers/internal/models"

type Input struct {
	Documents []models.ProcessedDocument `json:"documents"`
}

type Output struct {
	CustomerProfile models.CustomerProfile `json:"customerProfile"`
	CustomerID      string                 `json:"customerId"`
	CustomerName    string                 `json:"customerName"`
}
