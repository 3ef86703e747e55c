package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/leadscout/internal/search"
)

const validLeadsJSON = `[
	{"name": "Jane Doe", "role": "CTO", "linkedin": "https://linkedin.com/in/janedoe"},
	{"name": "John Smith", "role": "VP of Engineering", "linkedin": "https://linkedin.com/in/johnsmith"}
]`

func sampleResults(n int) []search.Result {
	all := []search.Result{
		{Title: "Jane Doe - CTO - C2FO | LinkedIn", URL: "https://linkedin.com/in/janedoe"},
		{Title: "John Smith – VP of Engineering – C2FO", URL: "https://linkedin.com/in/johnsmith"},
		{Title: "Alex Lee | C2FO", URL: "https://linkedin.com/in/alexlee"},
		{Title: "Sam Park - Head of Engineering - C2FO", URL: "https://linkedin.com/in/sampark"},
		{Title: "Kim Gray - CTO - C2FO", URL: "https://linkedin.com/in/kimgray"},
	}
	return all[:n]
}

func TestParseLeadsStrict(t *testing.T) {
	leads, err := ParseLeadsStrict(validLeadsJSON)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Jane Doe", leads[0].Name)
	assert.Equal(t, "CTO", leads[0].Role)
	assert.Equal(t, "https://linkedin.com/in/johnsmith", leads[1].LinkedIn)
}

func TestParseLeadsStrictFencedBlock(t *testing.T) {
	fenced := "```json\n" + validLeadsJSON + "\n```"
	leads, err := ParseLeadsStrict(fenced)
	require.NoError(t, err)
	assert.Len(t, leads, 2)
}

func TestParseLeadsStrictEmptyArray(t *testing.T) {
	leads, err := ParseLeadsStrict(`[]`)
	require.NoError(t, err)
	require.NotNil(t, leads)
	assert.Empty(t, leads)
}

func TestParseLeadsStrictRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not JSON", "no leads here"},
		{"object not array", `{"name": "Jane"}`},
		{"missing role", `[{"name": "Jane", "linkedin": "https://linkedin.com/in/jane"}]`},
		{"empty name", `[{"name": "", "role": "CTO", "linkedin": "https://linkedin.com/in/x"}]`},
		{"truncated", `[{"name": "Jane", "role": "CTO"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLeadsStrict(tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	arr, ok := ExtractJSONArray("Here are the leads: " + validLeadsJSON + " hope that helps!")
	require.True(t, ok)
	leads, err := ParseLeadsStrict(arr)
	require.NoError(t, err)
	assert.Len(t, leads, 2)

	_, ok = ExtractJSONArray("no brackets at all")
	assert.False(t, ok)

	_, ok = ExtractJSONArray("] backwards [")
	assert.False(t, ok)
}

func TestParseLeadsTiers(t *testing.T) {
	results := sampleResults(5)

	t.Run("strict tier wins", func(t *testing.T) {
		leads := ParseLeads(validLeadsJSON, results)
		require.Len(t, leads, 2)
		assert.Equal(t, "Jane Doe", leads[0].Name)
	})

	t.Run("embedded array tier", func(t *testing.T) {
		leads := ParseLeads("The leads I found:\n"+validLeadsJSON+"\nLet me know if you need more.", results)
		require.Len(t, leads, 2)
		assert.Equal(t, "John Smith", leads[1].Name)
	})

	t.Run("placeholder tier on garbage", func(t *testing.T) {
		leads := ParseLeads("I could not find any structured data.", results)
		require.Len(t, leads, 3)
		for _, lead := range leads {
			assert.Equal(t, "Engineering Leadership", lead.Role)
			assert.NotEmpty(t, lead.Name)
			assert.NotEmpty(t, lead.LinkedIn)
		}
	})
}

// Placeholder construction yields exactly min(3, resultCount) leads.
func TestPlaceholderLeadsCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		leads := PlaceholderLeads(sampleResults(n))
		want := n
		if want > 3 {
			want = 3
		}
		assert.Len(t, leads, want, "n=%d", n)
	}
}

func TestPlaceholderLeadsFields(t *testing.T) {
	leads := PlaceholderLeads(sampleResults(2))
	require.Len(t, leads, 2)
	assert.Equal(t, "Jane Doe", leads[0].Name)
	assert.Equal(t, "https://linkedin.com/in/janedoe", leads[0].LinkedIn)
	assert.Equal(t, "John Smith", leads[1].Name)
}

func TestNameFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Jane Doe - CTO - C2FO | LinkedIn", "Jane Doe"},
		{"John Smith – VP of Engineering", "John Smith"},
		{"Alex Lee | C2FO", "Alex Lee"},
		{"Plain Name", "Plain Name"},
		{"  Padded Name  ", "Padded Name"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nameFromTitle(tt.title))
	}
}
