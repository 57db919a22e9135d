// internal/workers/onboarding/compile-profile/compiler.go
package compileprofile

import (
	"onboarding-workers/internal/models"

	"github.com/google/uuid"
)

// ContactPlaceholderPolicy fills in contact details that no document supplied.
// Disabling it leaves them empty so profile validation rejects the profile.
type ContactPlaceholderPolicy struct {
	Enabled bool
	Email   string
	Phone   string
}

// Apply sets missing email and phone on p and marks them as placeholders.
func (c ContactPlaceholderPolicy) Apply(p *models.CustomerProfile) {
	if !c.Enabled {
		return
	}
	if p.Email == "" && c.Email != "" {
		p.Email = c.Email
		p.PlaceholderFields = append(p.PlaceholderFields, models.FieldEmail)
	}
	if p.PhoneNumber == "" && c.Phone != "" {
		p.PhoneNumber = c.Phone
		p.PlaceholderFields = append(p.PlaceholderFields, models.FieldPhoneNumber)
	}
}

// Compiler folds processed documents into a customer profile.
type Compiler struct {
	placeholders ContactPlaceholderPolicy
	newID        func() string
}

func NewCompiler(placeholders ContactPlaceholderPolicy) *Compiler {
	return &Compiler{
		placeholders: placeholders,
		newID:        uuid.NewString,
	}
}

// Compile merges docs in order. A later document overwrites any profile
// field an earlier one set; absent or blank values never overwrite.
func (c *Compiler) Compile(docs []models.ProcessedDocument) models.CustomerProfile {
	profile := models.CustomerProfile{
		ID:        c.newID(),
		Address:   models.Address{Country: models.DefaultCountry},
		Documents: make([]models.ProcessedDocument, 0, len(docs)),
	}

	for _, doc := range docs {
		fold(&profile, doc)
		profile.Documents = append(profile.Documents, doc)
	}

	c.placeholders.Apply(&profile)
	return profile
}

func fold(p *models.CustomerProfile, doc models.ProcessedDocument) {
	f := doc.Fields

	switch doc.Kind {
	case models.DocumentDriversLicense, models.DocumentPassport:
		set(&p.FirstName, f, "first_name")
		set(&p.LastName, f, "last_name")
		set(&p.DateOfBirth, f, "date_of_birth")
		set(&p.Address.Street, f, "address")
	case models.DocumentSocialSecurityCard:
		set(&p.SocialSecurityNumber, f, "social_security_number")
	case models.DocumentProofOfAddress:
		set(&p.Address.Street, f, "street")
		set(&p.Address.City, f, "city")
		set(&p.Address.State, f, "state")
		set(&p.Address.ZipCode, f, "zip_code")
	case models.DocumentEmploymentVerification:
		set(&p.EmploymentInfo.Employer, f, "employer")
		set(&p.EmploymentInfo.Position, f, "position")
		if income, ok := f.Number("salary"); ok && income >= 0 {
			p.EmploymentInfo.AnnualIncome = income
		}
		set(&p.EmploymentInfo.EmploymentStartDate, f, "start_date")
	}
}

func set(dst *string, fields models.ExtractedFields, key string) {
	if v, ok := fields.Text(key); ok {
		*dst = v
	}
}
