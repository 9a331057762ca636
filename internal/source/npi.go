package source

import (
	"regexp"

	"medref/internal"
	"medref/internal/codes"
	"medref/internal/table"
	"medref/internal/util"
)

var (
	npiColumnCandidates = []string{"NPI", "npi", "Npi"}

	npiOrgColumns = []string{
		"Provider Organization Name (Legal Business Name)",
		"Provider Organization Name",
		"provider_organization_name_legal_business_name",
		"Org Name",
	}

	npiNameColumns = []string{
		"Provider Name Prefix Text",
		"Provider First Name",
		"Provider Middle Name",
		"Provider Last Name (Legal Name)",
		"Provider Name Suffix Text",
	}

	tenDigitPattern = regexp.MustCompile(`^\d{10}$`)
)

// npiSource ingests the full NPPES registry dump. The file is wide and very
// long, so Load projects just the identifier and name columns.
type npiSource struct {
	sampleRows int
}

func (s *npiSource) Name() internal.SourceName { return internal.SourceNPI }

func (s *npiSource) Load(path string) (*table.Table, error) {
	if err := requireInput(path); err != nil {
		return nil, err
	}

	header, err := table.ReadCSVHeader(path)
	if err != nil {
		return nil, err
	}
	headerTable := &table.Table{Columns: header}

	npiCol, err := table.FindColumn(headerTable, "NPI", npiColumnCandidates, nil)
	if err != nil {
		// No candidate name matched; score a bounded sample instead.
		sample, sampleErr := table.ReadCSVSample(path, s.sampleRows)
		if sampleErr != nil {
			return nil, sampleErr
		}
		npiCol, err = table.FindColumn(sample, "NPI", nil, table.MatchFraction(tenDigitPattern))
		if err != nil {
			return nil, err
		}
	}

	usecols := []string{npiCol}
	if orgCol := firstPresent(headerTable, npiOrgColumns); orgCol != "" {
		usecols = append(usecols, orgCol)
	}
	for _, c := range npiNameColumns {
		if headerTable.HasColumn(c) {
			usecols = append(usecols, c)
		}
	}

	return table.ReadCSVColumns(path, usecols)
}

func (s *npiSource) Clean(t *table.Table) ([]internal.CodePair, error) {
	npiCol, err := table.FindColumn(t, "NPI", npiColumnCandidates, table.MatchFraction(tenDigitPattern))
	if err != nil {
		return nil, err
	}

	pairs := providerPairs(t, npiCol)
	return codes.Clean(pairs, codes.CleanOptions{
		Validate: codes.ValidNPI,
	}), nil
}

// providerPairs builds the description from the organization name when one
// exists, otherwise by joining the individual-provider name parts.
func providerPairs(t *table.Table, npiCol string) []internal.CodePair {
	npiIdx := t.ColumnIndex(npiCol)

	orgIdx := -1
	if orgCol := firstPresent(t, npiOrgColumns); orgCol != "" {
		orgIdx = t.ColumnIndex(orgCol)
	}

	nameIdx := make([]int, 0, len(npiNameColumns))
	for _, c := range npiNameColumns {
		if idx := t.ColumnIndex(c); idx >= 0 {
			nameIdx = append(nameIdx, idx)
		}
	}

	out := make([]internal.CodePair, 0, len(t.Rows))
	for _, row := range t.Rows {
		desc := ""
		if orgIdx >= 0 {
			desc = table.Cell(row, orgIdx)
		} else if len(nameIdx) > 0 {
			parts := make([]string, 0, len(nameIdx))
			for _, idx := range nameIdx {
				parts = append(parts, table.Cell(row, idx))
			}
			desc = util.JoinNonEmpty(parts)
		}
		out = append(out, internal.CodePair{
			Code:        table.Cell(row, npiIdx),
			Description: desc,
		})
	}
	return out
}

func firstPresent(t *table.Table, candidates []string) string {
	for _, c := range candidates {
		if t.HasColumn(c) {
			return c
		}
	}
	return ""
}
