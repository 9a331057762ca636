package source

import (
	"medref/internal"
	"medref/internal/codes"
	"medref/internal/table"
)

// rxnormSource is the RxNorm-era variant of the NPI processor: it loads the
// whole file without column projection and resolves the NPI column by name
// only, with no statistical fallback.
type rxnormSource struct{}

func (s *rxnormSource) Name() internal.SourceName { return internal.SourceRxNorm }

func (s *rxnormSource) Load(path string) (*table.Table, error) {
	if err := requireInput(path); err != nil {
		return nil, err
	}
	return table.ReadCSV(path)
}

func (s *rxnormSource) Clean(t *table.Table) ([]internal.CodePair, error) {
	npiCol, err := table.FindColumn(t, "NPI", npiColumnCandidates, nil)
	if err != nil {
		return nil, err
	}

	pairs := providerPairs(t, npiCol)
	return codes.Clean(pairs, codes.CleanOptions{
		Validate: codes.ValidNPI,
	}), nil
}
