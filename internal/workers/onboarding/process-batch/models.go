// internal/workers/onboarding/process-batch/models.go
package processbatch

import (
	"onboarding-workers/internal/common/validation"
	"onboarding-workers/internal/models"
)

type Input struct {
	Documents   []models.RawDocumentInput `json:"documents"`
	AccountType models.AccountType        `json:"accountType,omitempty"`
}

type Output struct {
	OnboardingResult models.ProcessingResult `json:"onboardingResult"`
	Status           models.ProcessingStatus `json:"onboardingStatus"`
	CustomerID       string                  `json:"customerId,omitempty"`
	AccountNumber    string                  `json:"accountNumber,omitempty"`
}

type ScanOutput struct {
	Documents []models.ProcessedDocument `json:"documents"`
}

// inputSchema checks the batch variables before they are decoded. Content is
// base64 as produced by encoding/json for []byte.
var inputSchema = validation.MustCompile("process-customer-batch-input", `{
  "type": "object",
  "required": ["documents"],
  "properties": {
    "documents": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["filename"],
        "properties": {
          "filename": {"type": "string", "minLength": 1},
          "content": {"type": ["string", "null"], "contentEncoding": "base64"},
          "contentType": {"type": "string"}
        }
      }
    },
    "accountType": {"enum": ["checking", "savings", "business", ""]}
  }
}`)
