package extractfields

import (
	"testing"

	"onboarding-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		name     string
		kind     models.DocumentKind
		raw      map[string]string
		expected models.ExtractedFields
	}{
		{
			name: "drivers license keeps identity keys",
			kind: models.DocumentDriversLicense,
			raw: map[string]string{
				"license_number": "D1234567", "first_name": "Jane", "last_name": "Doe",
				"date_of_birth": "1990-01-15", "address": "1 Main St", "state": "CA",
				"eye_color": "brown",
			},
			expected: models.ExtractedFields{
				"license_number": "D1234567", "first_name": "Jane", "last_name": "Doe",
				"date_of_birth": "1990-01-15", "address": "1 Main St", "state": "CA",
			},
		},
		{
			name: "passport renames given names and surname",
			kind: models.DocumentPassport,
			raw: map[string]string{
				"passport_number": "X9", "given_names": "Jane", "surname": "Doe",
				"date_of_birth": "1990-01-15", "nationality": "USA",
			},
			expected: models.ExtractedFields{
				"passport_number": "X9", "first_name": "Jane", "last_name": "Doe",
				"date_of_birth": "1990-01-15", "nationality": "USA",
			},
		},
		{
			name:     "ssn card",
			kind:     models.DocumentSocialSecurityCard,
			raw:      map[string]string{"ssn": "123-45-6789", "first_name": "Jane"},
			expected: models.ExtractedFields{"social_security_number": "123-45-6789", "first_name": "Jane"},
		},
		{
			name: "proof of address renames street",
			kind: models.DocumentProofOfAddress,
			raw: map[string]string{
				"street_address": "1 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701",
			},
			expected: models.ExtractedFields{
				"street": "1 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701",
			},
		},
		{
			name:     "employment",
			kind:     models.DocumentEmploymentVerification,
			raw:      map[string]string{"employer": "Acme", "position": "Engineer", "salary": "85000", "start_date": "2020-03-01"},
			expected: models.ExtractedFields{"employer": "Acme", "position": "Engineer", "salary": "85000", "start_date": "2020-03-01"},
		},
		{
			name:     "bank statement",
			kind:     models.DocumentBankStatement,
			raw:      map[string]string{"bank_name": "First", "balance": "1200.50"},
			expected: models.ExtractedFields{"bank_name": "First", "balance": "1200.50"},
		},
		{
			name:     "bank statement with only other entity types",
			kind:     models.DocumentBankStatement,
			raw:      map[string]string{"first_name": "Jane", "zip_code": "62701"},
			expected: models.ExtractedFields{},
		},
		{
			name:     "nothing recognised",
			kind:     models.DocumentPassport,
			raw:      map[string]string{"first_name": "Jane"},
			expected: models.ExtractedFields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Remap(tt.kind, tt.raw))
		})
	}
}

func TestCollectEntities(t *testing.T) {
	raw := collectEntities([]Entity{
		{Type: "first_name", MentionText: "Jan"},
		{Type: "first_name", MentionText: "Jane"},
		{Type: "last_name", MentionText: "   "},
		{Type: "", MentionText: "orphan"},
		{Type: " city ", MentionText: " Springfield "},
	})

	assert.Equal(t, map[string]string{"first_name": "Jane", "city": "Springfield"}, raw)
}

func TestMimeType(t *testing.T) {
	tests := map[string]string{
		"a.pdf":         "application/pdf",
		"b.JPG":         "image/jpeg",
		"c.jpeg":        "image/jpeg",
		"d.png":         "image/png",
		"e.tif":         "image/tiff",
		"f.TIFF":        "image/tiff",
		"g.docx":        "application/pdf",
		"no_extension":  "application/pdf",
		"archive.tar.gz": "application/pdf",
	}
	for name, expected := range tests {
		assert.Equal(t, expected, MimeType(name), name)
	}
}

func TestProcessorRouter(t *testing.T) {
	router := NewProcessorRouter(&Config{
		ProjectID:        "proj",
		Location:         "eu",
		Processors:       map[string]string{"passport": "pp-1"},
		DefaultProcessor: "default-1",
	})

	assert.Equal(t, "projects/proj/locations/eu/processors/pp-1", router.ProcessorName(models.DocumentPassport))
	assert.Equal(t, "projects/proj/locations/eu/processors/default-1", router.ProcessorName(models.DocumentBankStatement))
}
