// internal/workers/onboarding/validate-document/validator.go
package validatedocument

import (
	"regexp"

	"onboarding-workers/internal/models"
)

var ssnPattern = regexp.MustCompile(`^(\d{3}-\d{2}-\d{4}|\d{9})$`)

var requiredFields = map[models.DocumentKind][]string{
	models.DocumentDriversLicense:         {"license_number", "first_name", "last_name", "date_of_birth"},
	models.DocumentPassport:               {"passport_number", "first_name", "last_name", "date_of_birth"},
	models.DocumentProofOfAddress:         {"street", "city", "state", "zip_code"},
	models.DocumentEmploymentVerification: {"employer", "position"},
}

// ValidSSN accepts NNN-NN-NNNN or nine bare digits.
func ValidSSN(ssn string) bool {
	return ssnPattern.MatchString(ssn)
}

// MissingFields lists the checks doc fails. An empty result means valid.
// Bank statements and unrecognised kinds only need some extracted data.
func MissingFields(doc models.ProcessedDocument) []string {
	if len(doc.Fields) == 0 {
		return []string{"fields"}
	}

	if doc.Kind == models.DocumentSocialSecurityCard {
		ssn, _ := doc.Fields.Text("social_security_number")
		if !ValidSSN(ssn) {
			return []string{"social_security_number"}
		}
		return nil
	}

	var missing []string
	for _, key := range requiredFields[doc.Kind] {
		if _, ok := doc.Fields.Text(key); !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// ValidateDocument is a pure predicate; it does not touch the verification status.
func ValidateDocument(doc models.ProcessedDocument) bool {
	return len(MissingFields(doc)) == 0
}

// Resolve validates doc and records the outcome on it. Documents that were
// already resolved keep their status.
func Resolve(doc *models.ProcessedDocument) bool {
	valid := ValidateDocument(*doc)
	doc.Resolve(valid)
	return valid
}
