// internal/workers/onboarding/extract-fields/mapping.go
package extractfields

import (
	"path/filepath"
	"strings"

	"onboarding-workers/internal/models"
)

type fieldMapping struct {
	canonical string
	raw       string
}

var fieldMappings = map[models.DocumentKind][]fieldMapping{
	models.DocumentDriversLicense: {
		{"license_number", "license_number"},
		{"first_name", "first_name"},
		{"last_name", "last_name"},
		{"date_of_birth", "date_of_birth"},
		{"address", "address"},
		{"expiration_date", "expiration_date"},
		{"state", "state"},
	},
	models.DocumentPassport: {
		{"passport_number", "passport_number"},
		{"first_name", "given_names"},
		{"last_name", "surname"},
		{"date_of_birth", "date_of_birth"},
		{"nationality", "nationality"},
		{"expiration_date", "expiration_date"},
	},
	models.DocumentSocialSecurityCard: {
		{"social_security_number", "ssn"},
		{"first_name", "first_name"},
		{"last_name", "last_name"},
	},
	models.DocumentProofOfAddress: {
		{"street", "street_address"},
		{"city", "city"},
		{"state", "state"},
		{"zip_code", "zip_code"},
		{"country", "country"},
	},
	models.DocumentEmploymentVerification: {
		{"employer", "employer"},
		{"position", "position"},
		{"salary", "salary"},
		{"start_date", "start_date"},
	},
	models.DocumentBankStatement: {
		{"bank_name", "bank_name"},
		{"account_number", "account_number"},
		{"balance", "balance"},
		{"statement_date", "statement_date"},
	},
}

// collectEntities flattens entities into a type -> text map. Later entities of
// the same type overwrite earlier ones and blank entries are skipped.
func collectEntities(entities []Entity) map[string]string {
	raw := make(map[string]string, len(entities))
	for _, e := range entities {
		typ := strings.TrimSpace(e.Type)
		text := strings.TrimSpace(e.MentionText)
		if typ == "" || text == "" {
			continue
		}
		raw[typ] = text
	}
	return raw
}

// Remap converts raw entity types into the canonical keys for kind. Raw types
// that the kind does not know about are dropped; absent values are omitted.
func Remap(kind models.DocumentKind, raw map[string]string) models.ExtractedFields {
	fields := make(models.ExtractedFields)

	mappings, ok := fieldMappings[kind]
	if !ok {
		for k, v := range raw {
			fields[k] = v
		}
		return fields
	}

	for _, m := range mappings {
		if v, ok := raw[m.raw]; ok && v != "" {
			fields[m.canonical] = v
		}
	}
	return fields
}

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
}

// MimeType derives the upload MIME type from the filename extension,
// defaulting to PDF.
func MimeType(filename string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return mt
	}
	return "application/pdf"
}
