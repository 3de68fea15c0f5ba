package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabels(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil input", nil, nil},
		{"empty input", []string{}, []string{}},
		{"leading dots and case", []string{".COM", "Fr", " .net "}, []string{"com", "fr", "net"}},
		{"duplicates keep first position", []string{"fr", "com", "FR", ".com"}, []string{"fr", "com"}},
		{"blank entries dropped", []string{"", " ", ".", "io"}, []string{"io"}},
		{"multi-label suffix", []string{"co.uk", ".CO.UK"}, []string{"co.uk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLabels(tt.input))
		})
	}
}
