package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entitySchema = `{
  "type": "object",
  "required": ["entities"],
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"type": "string", "minLength": 1},
          "mentionText": {"type": "string"}
        }
      }
    }
  }
}`

func TestSchema_ValidateJSON(t *testing.T) {
	s, err := Compile("entities", entitySchema)
	require.NoError(t, err)

	tests := []struct {
		name      string
		doc       string
		wantValid bool
		wantField string
	}{
		{"valid", `{"entities":[{"type":"ssn","mentionText":"123-45-6789"}]}`, true, ""},
		{"empty list", `{"entities":[]}`, true, ""},
		{"missing entities", `{}`, false, "(root)"},
		{"entity without type", `{"entities":[{"mentionText":"x"}]}`, false, "entities.0"},
		{"wrong type", `{"entities":"nope"}`, false, "entities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.ValidateJSON([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantField != "" {
				assert.True(t, result.HasErrors(tt.wantField), "errors: %v", result.GetErrorMessages())
			}
		})
	}
}

func TestSchema_ValidateJSON_Malformed(t *testing.T) {
	s := MustCompile("entities", entitySchema)
	_, err := s.ValidateJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestSchema_ValidateValue(t *testing.T) {
	s := MustCompile("entities", entitySchema)

	result, err := s.ValidateValue(map[string]interface{}{
		"entities": []interface{}{map[string]interface{}{"type": ""}},
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.GetErrorMessages())
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", `{"type": 12}`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile("broken", `{"type": 12}`) })
}
