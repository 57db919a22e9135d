// internal/workers/onboarding/extract-fields/models.go
package extractfields

import "onboarding-workers/internal/models"

type Input struct {
	Filename     string              `json:"filename"`
	Content      []byte              `json:"content"`
	ContentType  string              `json:"contentType,omitempty"`
	DocumentKind models.DocumentKind `json:"documentKind"`
}

type Output struct {
	DocumentKind models.DocumentKind    `json:"documentKind"`
	Fields       models.ExtractedFields `json:"fields"`
	Extracted    bool                   `json:"extracted"`
}

// Entity is one typed value recognised by the extraction backend.
type Entity struct {
	Type        string  `json:"type"`
	MentionText string  `json:"mentionText"`
	Confidence  float64 `json:"confidence,omitempty"`
}
