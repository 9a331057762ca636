package source

import (
	"strings"

	"medref/internal"
	"medref/internal/codes"
	"medref/internal/table"
)

type snomedSource struct{}

func (s *snomedSource) Name() internal.SourceName { return internal.SourceSNOMED }

func (s *snomedSource) Load(path string) (*table.Table, error) {
	if err := requireInput(path); err != nil {
		return nil, err
	}
	return table.ReadTSV(path)
}

func (s *snomedSource) Clean(t *table.Table) ([]internal.CodePair, error) {
	conceptCol := columnFoldCase(t, "conceptid")
	if conceptCol == "" {
		return nil, &table.MissingColumnError{Role: "conceptId", Have: t.Columns}
	}
	termCol := columnFoldCase(t, "term")
	if termCol == "" {
		return nil, &table.MissingColumnError{Role: "term", Have: t.Columns}
	}

	rows := t.Rows
	// Keep active rows and English terms when those columns exist.
	if activeIdx := t.ColumnIndex("active"); activeIdx >= 0 {
		rows = filterRows(rows, activeIdx, func(v string) bool { return v == "1" })
	}
	if langCol := columnFoldCase(t, "languagecode"); langCol != "" {
		langIdx := t.ColumnIndex(langCol)
		rows = filterRows(rows, langIdx, func(v string) bool { return strings.ToLower(v) == "en" })
	}

	conceptIdx := t.ColumnIndex(conceptCol)
	termIdx := t.ColumnIndex(termCol)
	pairs := make([]internal.CodePair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, internal.CodePair{
			Code:        table.Cell(row, conceptIdx),
			Description: table.Cell(row, termIdx),
		})
	}

	return codes.Clean(pairs, codes.CleanOptions{
		Validate: codes.PatternValidator(codes.SNOMEDPattern),
	}), nil
}

func columnFoldCase(t *table.Table, lower string) string {
	for _, c := range t.Columns {
		if strings.ToLower(c) == lower {
			return c
		}
	}
	return ""
}

func filterRows(rows [][]string, idx int, keep func(string) bool) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if keep(table.Cell(row, idx)) {
			out = append(out, row)
		}
	}
	return out
}
