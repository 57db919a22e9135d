// internal/workers/onboarding/classify-document/models.go
package classifydocument

import "onboarding-workers/internal/models"

type Input struct {
	Filename  string   `json:"filename"`
	Filenames []string `json:"filenames,omitempty"`
}

type Classification struct {
	Filename     string              `json:"filename"`
	DocumentKind models.DocumentKind `json:"documentKind"`
}

type Output struct {
	DocumentKind    models.DocumentKind `json:"documentKind,omitempty"`
	Classifications []Classification    `json:"classifications,omitempty"`
}
