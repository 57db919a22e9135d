// internal/workers/onboarding/validate-document/models.go
package validatedocument

import "onboarding-workers/internal/models"

type Input struct {
	Document  *models.ProcessedDocument  `json:"document,omitempty"`
	Documents []models.ProcessedDocument `json:"documents,omitempty"`
}

type Output struct {
	Document      *models.ProcessedDocument  `json:"document,omitempty"`
	Documents     []models.ProcessedDocument `json:"documents,omitempty"`
	AllVerified   bool                       `json:"allVerified"`
	RejectedCount int                        `json:"rejectedCount"`
}
