package source

import (
	"errors"
	"testing"

	"medref/internal/table"
)

func TestRxNormLoadKeepsAllColumns(t *testing.T) {
	path := writeFile(t, "npidata.csv", npiCSV)

	s := &rxnormSource{}
	raw, err := s.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	// No projection in this variant: the full width comes back.
	if len(raw.Columns) != 5 {
		t.Fatalf("columns=%v", raw.Columns)
	}

	pairs, err := s.Clean(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 || pairs[1].Code != "1234567885" {
		t.Fatalf("pairs=%+v", pairs)
	}
}

func TestRxNormNoHeuristicFallback(t *testing.T) {
	// Unlike the npi source, a missing NPI header is fatal even when a
	// column full of plausible identifiers exists.
	raw := &table.Table{
		Columns: []string{"identifier", "org"},
		Rows:    [][]string{{"1234567893", "ACME HEALTH LLC"}},
	}
	s := &rxnormSource{}
	_, err := s.Clean(raw)
	var missing *table.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
}
