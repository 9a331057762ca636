package internal

// SourceName identifies one of the coding systems the tool normalizes.
type SourceName string

const (
	SourceHCPCS    SourceName = "hcpcs"
	SourceICD10CM  SourceName = "icd10cm"
	SourceICD10WHO SourceName = "icd10who"
	SourceLOINC    SourceName = "loinc"
	SourceNPI      SourceName = "npi"
	SourceRxNorm   SourceName = "rxnorm"
	SourceSNOMED   SourceName = "snomed"
)

// CodePair is a candidate record after parsing and cleaning, before the run
// timestamp is stamped on.
type CodePair struct {
	Code        string
	Description string
}

// StandardizedRecord is the final three-column output row. Code is unique
// within a record set and Description is never empty.
type StandardizedRecord struct {
	Code        string
	Description string
	LastUpdated string
}

type RunRow struct {
	ID         int
	TraceID    string
	Source     string
	InputPath  string
	OutputPath string
	Counts     map[string]int
	Timings    map[string]float64
	CreatedAt  string
}
