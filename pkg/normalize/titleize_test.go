package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple words",
			input:    "COMPUTER SCIENCE",
			expected: "Computer Science",
		},
		{
			name:     "hyphen and slash boundaries",
			input:    "ACCOUNTING/FINANCE AND CROSS-LISTED",
			expected: "Accounting/Finance And Cross-Listed",
		},
		{
			name:     "parenthetical acronym",
			input:    "NATIONAL UNIVERSITY OF SINGAPORE (NUS)",
			expected: "National University Of Singapore (NUS)",
		},
		{
			name:     "na as entire string",
			input:    "na",
			expected: "NA",
		},
		{
			name:     "na as part of a word stays",
			input:    "nanotechnology",
			expected: "Nanotechnology",
		},
		{
			name:     "ip acronym",
			input:    "IP LAW",
			expected: "IP Law",
		},
		{
			name:     "mit acronym",
			input:    "JOINT DEGREE WITH MIT",
			expected: "Joint Degree With MIT",
		},
		{
			name:     "mixed case input is lowered first",
			input:    "sChOoL oF cOmPuTiNg",
			expected: "School Of Computing",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, titleize(tt.input))
		})
	}
}

func TestTitleizeIdempotent(t *testing.T) {
	inputs := []string{
		"NATIONAL UNIVERSITY OF SINGAPORE (NUS)",
		"School Of Computing",
		"design-your-own-module",
		"na",
		"faculty of engineering",
	}

	for _, input := range inputs {
		once := titleize(input)
		assert.Equal(t, once, titleize(once), "titleize should be idempotent for %q", input)
	}
}
