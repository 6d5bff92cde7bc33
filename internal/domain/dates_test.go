package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInspectionDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "short format",
			input:    "18-Mar-2024",
			expected: time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "short format single digit day",
			input:    "5-Jan-2023",
			expected: time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "short format embedded in text",
			input:    "Inspected 02-Dec-2022 (routine)",
			expected: time.Date(2022, time.December, 2, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "short format unknown month",
			input: "18-Foo-2024",
			ok:    false,
		},
		{
			name:  "short format month table is case sensitive",
			input: "18-MAR-2024",
			ok:    false,
		},
		{
			name:     "long format",
			input:    "March 5, 2023",
			expected: time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "long format abbreviated month",
			input:    "Sep 30, 2021",
			expected: time.Date(2021, time.September, 30, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "long format unknown month",
			input: "Smarch 5, 2023",
			ok:    false,
		},
		{
			name:  "iso format is not accepted",
			input: "2024-03-18",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInspectionDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2024, time.July, 19, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(in))
}
