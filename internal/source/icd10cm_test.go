package source

import (
	"errors"
	"testing"

	"medref/internal/table"
)

func TestICD10CMLoadDelimited(t *testing.T) {
	content := "ICD-10-CM Code\tLong Description\nA00\tCholera\nA00.1\tCholera due to Vibrio cholerae 01, biovar eltor\n"
	path := writeFile(t, "icd10cm.txt", content)

	s := &icd10cmSource{}
	raw, err := s.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw.Columns) != 2 || raw.Columns[0] != "ICD-10-CM Code" {
		t.Fatalf("columns=%v", raw.Columns)
	}

	pairs, err := s.Clean(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 || pairs[1].Code != "A00.1" {
		t.Fatalf("pairs=%+v", pairs)
	}
}

func TestICD10CMLoadFixedWidth(t *testing.T) {
	content := "" +
		"00001 A00     0 Cholera                                       Cholera\n" +
		"\n" +
		"00002 A00.0   1 Cholera d/t Vib cholerae                      Cholera due to Vibrio cholerae 01 biovar cholerae\n" +
		"00003 B01     1 Varicella\n" +
		"this line matches neither pattern\n"
	path := writeFile(t, "icd10cm_order.txt", content)

	s := &icd10cmSource{}
	raw, err := s.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw.Columns) != 5 {
		t.Fatalf("columns=%v", raw.Columns)
	}
	if len(raw.Rows) != 3 {
		t.Fatalf("rows=%v", raw.Rows)
	}
	// The short pattern reuses its single description for both fields.
	if raw.Rows[2][3] != "Varicella" || raw.Rows[2][4] != "Varicella" {
		t.Fatalf("short row=%v", raw.Rows[2])
	}

	pairs, err := s.Clean(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 3 {
		t.Fatalf("pairs=%+v", pairs)
	}
	if pairs[1].Code != "A00.0" || pairs[1].Description != "Cholera due to Vibrio cholerae 01 biovar cholerae" {
		t.Fatalf("long desc pair=%+v", pairs[1])
	}
}

func TestICD10CMParseExhaustion(t *testing.T) {
	path := writeFile(t, "garbage.txt", "garbage\nmore garbage\n")
	s := &icd10cmSource{}
	_, err := s.Load(path)
	var exhausted *ParseExhaustionError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ParseExhaustionError, got %v", err)
	}
}

func TestICD10CMCleanStatisticalFallback(t *testing.T) {
	raw := &table.Table{
		Columns: []string{"col_a", "col_b"},
		Rows: [][]string{
			{"Cholera due to Vibrio cholerae", "a00.1"},
			{"Typhoid fever unspecified", "A01.00"},
			{"not a description row", "junk"},
		},
	}

	s := &icd10cmSource{}
	pairs, err := s.Clean(raw)
	if err != nil {
		t.Fatal(err)
	}
	// col_b wins the code scan by match fraction; col_a wins description
	// by mean length. Codes are upper-cased before validation.
	if len(pairs) != 2 {
		t.Fatalf("pairs=%+v", pairs)
	}
	if pairs[0].Code != "A00.1" || pairs[0].Description != "Cholera due to Vibrio cholerae" {
		t.Fatalf("first=%+v", pairs[0])
	}
}

func TestICD10CMRejectsLeadingU(t *testing.T) {
	raw := &table.Table{
		Columns: []string{"ICD-10-CM Code", "Long Description"},
		Rows: [][]string{
			{"U07.1", "COVID-19"},
			{"S72.001A", "Fracture of femur initial encounter"},
		},
	}
	s := &icd10cmSource{}
	pairs, err := s.Clean(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 1 || pairs[0].Code != "S72.001A" {
		t.Fatalf("pairs=%+v", pairs)
	}
}
