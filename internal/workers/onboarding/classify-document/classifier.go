// internal/workers/onboarding/classify-document/classifier.go
package classifydocument

import (
	"strings"

	"onboarding-workers/internal/models"
)

type rule struct {
	kind     models.DocumentKind
	keywords []string
}

// rules are checked in order and the first keyword hit wins.
var rules = []rule{
	{models.DocumentDriversLicense, []string{"license", "dl", "driver"}},
	{models.DocumentPassport, []string{"passport"}},
	{models.DocumentSocialSecurityCard, []string{"ssn", "social", "security"}},
	{models.DocumentProofOfAddress, []string{"address", "utility", "bill"}},
	{models.DocumentEmploymentVerification, []string{"employment", "pay", "salary"}},
	{models.DocumentBankStatement, []string{"bank", "statement"}},
}

// Classify infers the document kind from a filename by case-insensitive
// substring match. Unrecognised names default to a driver's license.
func Classify(filename string) models.DocumentKind {
	name := strings.ToLower(filename)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.kind
			}
		}
	}
	return models.DocumentDriversLicense
}
