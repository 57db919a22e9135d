// internal/workers/onboarding/validate-profile/validator.go
package validateprofile

import "onboarding-workers/internal/models"

// ValidateProfile requires personal details, a full address, employment with
// positive income and at least one document. The reasons are diagnostic only.
func ValidateProfile(p models.CustomerProfile) (bool, []Reason) {
	var reasons []Reason

	required := func(field, value string) {
		if value == "" {
			reasons = append(reasons, Reason{Field: field, Code: ReasonMissing})
		}
	}

	required("firstName", p.FirstName)
	required("lastName", p.LastName)
	required("dateOfBirth", p.DateOfBirth)
	required("email", p.Email)
	required("phoneNumber", p.PhoneNumber)

	required("address.street", p.Address.Street)
	required("address.city", p.Address.City)
	required("address.state", p.Address.State)
	required("address.zipCode", p.Address.ZipCode)

	required("employmentInfo.employer", p.EmploymentInfo.Employer)
	required("employmentInfo.position", p.EmploymentInfo.Position)
	if p.EmploymentInfo.AnnualIncome <= 0 {
		reasons = append(reasons, Reason{Field: "employmentInfo.annualIncome", Code: ReasonNotPositive})
	}

	if len(p.Documents) == 0 {
		reasons = append(reasons, Reason{Field: "documents", Code: ReasonNoDocuments})
	}

	return len(reasons) == 0, reasons
}

// Fields flattens reasons for logging.
func Fields(reasons []Reason) []string {
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = r.Field
	}
	return out
}
