// Package codes holds the per-source code grammars and the shared
// record-cleaning pass applied between parsing and output.
package codes

import "regexp"

var (
	// HCPCSPattern: one letter A through V, then four digits.
	HCPCSPattern = regexp.MustCompile(`^[A-V]\d{4}$`)

	// ICD10Pattern: letter (no leading U), digit, alphanumeric, optional
	// decimal suffix of 1 to 4 alphanumerics.
	ICD10Pattern = regexp.MustCompile(`^[A-TV-Z][0-9][0-9A-Z](?:\.[0-9A-Z]{1,4})?$`)

	// SNOMEDPattern: numeric concept identifier, 6 to 18 digits.
	SNOMEDPattern = regexp.MustCompile(`^\d{6,18}$`)
)

// Validator reports whether a cleaned code string is acceptable.
type Validator func(code string) bool

// PatternValidator wraps an anchored grammar regex as a Validator.
func PatternValidator(pattern *regexp.Regexp) Validator {
	return func(code string) bool {
		return pattern.MatchString(code)
	}
}
