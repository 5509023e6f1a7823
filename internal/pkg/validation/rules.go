package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Identity document pattern. Digits with optional dot and hyphen
	// separators, as printed on the document. The value doubles as the
	// initial account password so the charset is kept narrow.
	IDNumberPattern = `^[0-9.\-]{4,20}$`

	// Course code pattern, short uppercase alphanumeric like MAT101
	CourseCodePattern = `^[A-Z]{2,4}[0-9]{2,4}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 80
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	IDNumber   *regexp.Regexp
	CourseCode *regexp.Regexp
}{
	IDNumber:   regexp.MustCompile(IDNumberPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// ValidIDNumber reports whether the value is an acceptable identity document
// number.
func ValidIDNumber(value string) bool {
	return CompiledPatterns.IDNumber.MatchString(value)
}

// ValidCourseCode reports whether the value is an acceptable course code.
func ValidCourseCode(value string) bool {
	return CompiledPatterns.CourseCode.MatchString(value)
}

// ValidName reports whether a first or last name is within bounds.
func ValidName(value string) bool {
	return len(value) >= NameMinLength && len(value) <= NameMaxLength
}
