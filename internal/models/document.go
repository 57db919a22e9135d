// internal/models/document.go
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DocumentKind identifies which identity or financial document a file holds.
type DocumentKind string

const (
	DocumentDriversLicense         DocumentKind = "drivers_license"
	DocumentPassport               DocumentKind = "passport"
	DocumentSocialSecurityCard     DocumentKind = "social_security_card"
	DocumentProofOfAddress         DocumentKind = "proof_of_address"
	DocumentEmploymentVerification DocumentKind = "employment_verification"
	DocumentBankStatement          DocumentKind = "bank_statement"
)

// DocumentKinds lists every supported kind in classification priority order.
var DocumentKinds = []DocumentKind{
	DocumentDriversLicense,
	DocumentPassport,
	DocumentSocialSecurityCard,
	DocumentProofOfAddress,
	DocumentEmploymentVerification,
	DocumentBankStatement,
}

func (k DocumentKind) IsValid() bool {
	for _, known := range DocumentKinds {
		if k == known {
			return true
		}
	}
	return false
}

// VerificationStatus tracks a document through validation.
type VerificationStatus string

const (
	VerificationPending              VerificationStatus = "pending"
	VerificationVerified             VerificationStatus = "verified"
	VerificationRejected             VerificationStatus = "rejected"
	VerificationRequiresManualReview VerificationStatus = "requires_manual_review"
)

// RawDocumentInput is one uploaded file. Content is base64 in JSON payloads.
type RawDocumentInput struct {
	Filename    string `json:"filename"`
	Content     []byte `json:"content"`
	ContentType string `json:"contentType,omitempty"`
}

// ExtractedFields maps canonical field names to string or numeric values.
type ExtractedFields map[string]interface{}

// Text returns the trimmed string form of key and whether it is present and
// non-empty. Numeric zero counts as absent.
func (f ExtractedFields) Text(key string) (string, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", false
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		if val == 0 {
			return "", false
		}
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		if val == 0 {
			return "", false
		}
		s = strconv.Itoa(val)
	case int64:
		if val == 0 {
			return "", false
		}
		s = strconv.FormatInt(val, 10)
	default:
		s = fmt.Sprint(val)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Number parses key as a plain decimal. Currency symbols and digit grouping
// are not accepted, so "$85,000" reports false.
func (f ExtractedFields) Number(key string) (float64, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}
	s, ok := f.Text(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (f ExtractedFields) Clone() ExtractedFields {
	out := make(ExtractedFields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// ProcessedDocument is a classified and extracted document belonging to one batch.
type ProcessedDocument struct {
	ID                 string             `json:"id"`
	Kind               DocumentKind       `json:"kind"`
	Filename           string             `json:"filename"`
	Fields             ExtractedFields    `json:"fields"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	UploadedAt         time.Time          `json:"uploadedAt"`
}

// Resolve moves a pending document to Verified or Rejected. It reports false
// when the document was already resolved.
func (d *ProcessedDocument) Resolve(valid bool) bool {
	if d.VerificationStatus != VerificationPending {
		return false
	}
	if valid {
		d.VerificationStatus = VerificationVerified
	} else {
		d.VerificationStatus = VerificationRejected
	}
	return true
}
