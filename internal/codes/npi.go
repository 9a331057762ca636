package codes

import "regexp"

var reNonDigit = regexp.MustCompile(`\D`)

// ValidNPI checks a 10-digit National Provider Identifier. The Luhn check
// digit is computed over the 9 leading digits with the card-issuer prefix
// 80840 prepended, per the CMS specification.
func ValidNPI(candidate string) bool {
	s := reNonDigit.ReplaceAllString(candidate, "")
	if len(s) != 10 {
		return false
	}

	base := "80840" + s[:9]
	total := 0
	double := true
	for i := len(base) - 1; i >= 0; i-- {
		d := int(base[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
		double = !double
	}

	check := (10 - total%10) % 10
	return check == int(s[9]-'0')
}
