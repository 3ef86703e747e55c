package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLeads_Valid(t *testing.T) {
	doc := `[
		{"name": "Jane Doe", "role": "CTO", "linkedin": "https://www.linkedin.com/in/janedoe"},
		{"name": "John Smith", "role": "VP Engineering", "linkedin": "https://www.linkedin.com/in/johnsmith", "email": "john@c2fo.com"}
	]`
	assert.NoError(t, ValidateLeads(doc))
}

func TestValidateLeads_EmptyArray(t *testing.T) {
	assert.NoError(t, ValidateLeads(`[]`))
}

func TestValidateLeads_MissingRequiredField(t *testing.T) {
	doc := `[{"name": "Jane Doe", "linkedin": "https://www.linkedin.com/in/janedoe"}]`
	err := ValidateLeads(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "role")
}

func TestValidateLeads_WrongShape(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"object not array", `{"name": "Jane"}`},
		{"array of strings", `["Jane Doe"]`},
		{"empty name", `[{"name": "", "role": "CTO", "linkedin": "https://example.com"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateLeads(tt.doc))
		})
	}
}

func TestValidateLeads_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateLeads(`not json at all`))
}
