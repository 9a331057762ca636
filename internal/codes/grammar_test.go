package codes

import "testing"

func TestHCPCSPattern(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"A1234", true},
		{"V5364", true},
		{"Z1234", false},
		{"W1234", false},
		{"A123", false},
		{"A12345", false},
		{"11234", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := HCPCSPattern.MatchString(tc.code); got != tc.want {
			t.Errorf("HCPCS %q: got %v want %v", tc.code, got, tc.want)
		}
	}
}

func TestICD10Pattern(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"A00", true},
		{"A00.1", true},
		{"S72.001A", true},
		{"Z99.89", true},
		{"U07", false},
		{"U07.1", false},
		{"A0", false},
		{"A00.12345", false},
		{"A00.", false},
	}
	for _, tc := range cases {
		if got := ICD10Pattern.MatchString(tc.code); got != tc.want {
			t.Errorf("ICD-10 %q: got %v want %v", tc.code, got, tc.want)
		}
	}
}

func TestSNOMEDPattern(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"123456", true},
		{"404684003", true},
		{"123456789012345678", true},
		{"12345", false},
		{"1234567890123456789", false},
		{"12345a", false},
	}
	for _, tc := range cases {
		if got := SNOMEDPattern.MatchString(tc.code); got != tc.want {
			t.Errorf("SNOMED %q: got %v want %v", tc.code, got, tc.want)
		}
	}
}
