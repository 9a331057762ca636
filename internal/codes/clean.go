package codes

import (
	"strings"

	"medref/internal"
)

// CleanOptions controls the shared cleaning pass.
type CleanOptions struct {
	// Uppercase folds codes before validation, for grammars that are
	// compared case-insensitively (HCPCS, ICD-10).
	Uppercase bool
	// Validate accepts or rejects each code; nil keeps every code.
	Validate Validator
}

// Clean trims both fields, optionally upper-cases the code, applies the
// validator, drops rows with empty descriptions, and deduplicates by code
// keeping the first occurrence in input order. An empty result is a valid
// outcome, not an error.
func Clean(pairs []internal.CodePair, opts CleanOptions) []internal.CodePair {
	seen := map[string]struct{}{}
	out := make([]internal.CodePair, 0, len(pairs))
	for _, p := range pairs {
		code := strings.TrimSpace(p.Code)
		if opts.Uppercase {
			code = strings.ToUpper(code)
		}
		desc := strings.TrimSpace(p.Description)

		if desc == "" {
			continue
		}
		if opts.Validate != nil && !opts.Validate(code) {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, internal.CodePair{Code: code, Description: desc})
	}
	return out
}
