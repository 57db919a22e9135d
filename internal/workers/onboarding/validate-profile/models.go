// internal/workers/onboarding/validate-profile/models.go
package validateprofile

import "onboarding-workers/internal/models"

type Input struct {
	CustomerProfile *models.CustomerProfile `json:"customerProfile"`
}

type Output struct {
	Valid   bool     `json:"valid"`
	Reasons []Reason `json:"reasons,omitempty"`
}

// Reason names one failed check.
type Reason struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

const (
	ReasonMissing     = "missing"
	ReasonNotPositive = "not_positive"
	ReasonNoDocuments = "no_documents"
)
