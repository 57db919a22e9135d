// internal/models/profile.go
package models

const DefaultCountry = "USA"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type EmploymentInfo struct {
	Employer            string  `json:"employer"`
	Position            string  `json:"position"`
	AnnualIncome        float64 `json:"annualIncome"`
	EmploymentStartDate string  `json:"employmentStartDate,omitempty"`
}

// CustomerProfile is the merged view of every document in a batch.
type CustomerProfile struct {
	ID                   string              `json:"id"`
	FirstName            string              `json:"firstName"`
	LastName             string              `json:"lastName"`
	DateOfBirth          string              `json:"dateOfBirth"`
	SocialSecurityNumber string              `json:"socialSecurityNumber,omitempty"`
	Address              Address             `json:"address"`
	PhoneNumber          string              `json:"phoneNumber"`
	Email                string              `json:"email"`
	EmploymentInfo       EmploymentInfo      `json:"employmentInfo"`
	Documents            []ProcessedDocument `json:"documents"`
	// PlaceholderFields lists contact fields filled from configured defaults.
	PlaceholderFields []string `json:"placeholderFields,omitempty"`
}

const (
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
)

func (p *CustomerProfile) IsPlaceholder(field string) bool {
	for _, f := range p.PlaceholderFields {
		if f == field {
			return true
		}
	}
	return false
}

// ContactEmail returns the customer's own email, or "" when none was supplied.
func (p *CustomerProfile) ContactEmail() string {
	if p.IsPlaceholder(FieldEmail) {
		return ""
	}
	return p.Email
}

func (p *CustomerProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// AllVerified reports whether the profile has documents and every one is Verified.
func (p *CustomerProfile) AllVerified() bool {
	if len(p.Documents) == 0 {
		return false
	}
	for _, doc := range p.Documents {
		if doc.VerificationStatus != VerificationVerified {
			return false
		}
	}
	return true
}
