package table

import (
	"fmt"
	"regexp"
	"strings"
)

// MissingColumnError reports that a required column could not be identified
// either by name or by the statistical fallback.
type MissingColumnError struct {
	Role string
	Have []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no %s column identified; headers: %v", e.Role, e.Have)
}

// Scorer rates a column's values for the statistical fallback.
type Scorer func(values []string) float64

// FindColumn resolves a column in two phases: exact case-sensitive candidate
// names tried in order, then a scored scan over all columns. The scan uses
// strict greater-than, so ties break to the first column seen; a column must
// score above zero to be chosen. A name match short-circuits the scan.
func FindColumn(t *Table, role string, candidates []string, scorer Scorer, exclude ...string) (string, error) {
	for _, c := range candidates {
		if t.HasColumn(c) {
			return c, nil
		}
	}

	if scorer != nil {
		best, bestScore := "", 0.0
		for _, col := range t.Columns {
			if contains(exclude, col) {
				continue
			}
			if score := scorer(t.Values(col)); score > bestScore {
				best, bestScore = col, score
			}
		}
		if best != "" {
			return best, nil
		}
	}

	return "", &MissingColumnError{Role: role, Have: t.Columns}
}

// MatchFraction scores a column by the fraction of values whose trimmed,
// upper-cased form fully matches the pattern.
func MatchFraction(pattern *regexp.Regexp) Scorer {
	return func(values []string) float64 {
		if len(values) == 0 {
			return 0
		}
		matched := 0
		for _, v := range values {
			if pattern.MatchString(strings.ToUpper(strings.TrimSpace(v))) {
				matched++
			}
		}
		return float64(matched) / float64(len(values))
	}
}

// MeanLength scores a column by its average string length, favoring the most
// text-heavy column as the description.
func MeanLength() Scorer {
	return func(values []string) float64 {
		if len(values) == 0 {
			return 0
		}
		total := 0
		for _, v := range values {
			total += len([]rune(v))
		}
		return float64(total) / float64(len(values))
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
