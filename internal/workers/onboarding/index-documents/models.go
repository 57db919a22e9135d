// internal/workers/onboarding/index-documents/models.go
package indexdocuments

import (
	"time"

	"onboarding-workers/internal/models"
)

type Input struct {
	CustomerID string                     `json:"customerId"`
	Documents  []models.ProcessedDocument `json:"documents"`
}

type Output struct {
	IndexedCount int    `json:"indexedCount"`
	Index        string `json:"index"`
}

// IndexedDocument is the search projection of a processed document. Field
// values stay out of the index; only their names are recorded.
type IndexedDocument struct {
	DocumentID         string                    `json:"documentId"`
	CustomerID         string                    `json:"customerId,omitempty"`
	Kind               models.DocumentKind       `json:"kind"`
	Filename           string                    `json:"filename"`
	VerificationStatus models.VerificationStatus `json:"verificationStatus"`
	FieldNames         []string                  `json:"fieldNames"`
	UploadedAt         time.Time                 `json:"uploadedAt"`
	IndexedAt          time.Time                 `json:"indexedAt"`
}
