package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"456", 456, true},
		{"28.5", 28.5, true},
		{"-3", -3, true},
		{"1,234", 1234, true},
		{"12,345,678", 12345678, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12:34", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseNumeric(tt.in)
		assert.Equal(t, tt.ok, ok, "parseNumeric(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "parseNumeric(%q)", tt.in)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"55", 0.55, true},
		{"100", 1.0, true},
		{"0", 0.0, true},
		{"45.5", 0.455, true},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePercentage(tt.in)
		assert.Equal(t, tt.ok, ok, "parsePercentage(%q)", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-12, "parsePercentage(%q)", tt.in)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"14:32", 14 + 32.0/60, true},
		{"0:00", 0, true},
		{"31:30", 31.5, true},
		{"60:00", 60, true},
		{"abc", 0, false},
		{"14", 0, false},
		{"14:60", 0, false},
		{"-1:30", 0, false},
		{"14:-5", 0, false},
		{"14:3x", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseDuration(tt.in)
		assert.Equal(t, tt.ok, ok, "parseDuration(%q)", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-12, "parseDuration(%q)", tt.in)
		}
	}
}
