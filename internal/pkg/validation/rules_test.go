package validation

import "testing"

func TestValidIDNumber(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1234567-8", true},
		{"12345678", true},
		{"1.234.567-8", true},
		{"123-", true},
		{"-1234567", true},
		{"1234567-k", false},
		{"1234567-K", false},
		{"123", false},
		{"", false},
		{"abc12345", false},
		{"123456789012345678901", false},
	}

	for _, tt := range tests {
		if got := ValidIDNumber(tt.value); got != tt.want {
			t.Errorf("ValidIDNumber(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidCourseCode(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"MAT101", true},
		{"FIS2020", true},
		{"mat101", false},
		{"M1", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidCourseCode(tt.value); got != tt.want {
			t.Errorf("ValidCourseCode(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
