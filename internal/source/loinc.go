package source

import (
	"medref/internal"
	"medref/internal/codes"
	"medref/internal/table"
)

type loincSource struct{}

func (s *loincSource) Name() internal.SourceName { return internal.SourceLOINC }

func (s *loincSource) Load(path string) (*table.Table, error) {
	if err := requireInput(path); err != nil {
		return nil, err
	}
	return table.ReadCSV(path)
}

// Clean applies no code grammar: LOINC rows survive on the strength of a
// non-empty code and description alone.
func (s *loincSource) Clean(t *table.Table) ([]internal.CodePair, error) {
	codeCol, err := table.FindColumn(t, "LOINC_NUM", []string{"LOINC_NUM"}, nil)
	if err != nil {
		return nil, err
	}
	descCol, err := table.FindColumn(t, "LONG_COMMON_NAME", []string{"LONG_COMMON_NAME"}, nil)
	if err != nil {
		return nil, err
	}

	pairs := pairsFromTable(t, codeCol, descCol)
	return codes.Clean(pairs, codes.CleanOptions{
		Validate: func(code string) bool { return code != "" },
	}), nil
}
