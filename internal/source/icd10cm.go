package source

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"medref/internal"
	"medref/internal/codes"
	"medref/internal/table"
)

// The CMS order file is space-padded: order number, code, validity digit,
// short description, then the long description after a gap of 2+ spaces.
var (
	icd10cmLineLong  = regexp.MustCompile(`^\s*(\d+)\s+([A-TV-Z][0-9][0-9A-Z](?:\.[0-9A-Z]{1,4})?)\s+([01])\s+(.*?)\s{2,}(.*?)\s*$`)
	icd10cmLineShort = regexp.MustCompile(`^\s*(\d+)\s+([A-TV-Z][0-9][0-9A-Z](?:\.[0-9A-Z]{1,4})?)\s+([01])\s+(.*\S)\s*$`)
)

var (
	icd10cmCodeCandidates = []string{"ICD-10-CM Code", "ICD-10-CM", "Code", "code", "icd10cm"}
	icd10cmDescCandidates = []string{
		"Long Description", "Description", "Title",
		"Short Description", "short_description", "long_description",
	}
)

type icd10cmSource struct{}

func (s *icd10cmSource) Name() internal.SourceName { return internal.SourceICD10CM }

// Load tries delimited parsing first; a single-column result means the
// delimiters were not found and the fixed-width order-file layout applies.
func (s *icd10cmSource) Load(path string) (*table.Table, error) {
	if err := requireInput(path); err != nil {
		return nil, err
	}

	t, err := table.ReadDelimited(path)
	if err == nil && len(t.Columns) > 1 {
		return t, nil
	}

	return s.loadFixedWidth(path)
}

func (s *icd10cmSource) loadFixedWidth(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t := &table.Table{Columns: []string{"Order", "ICD-10-CM Code", "Valid", "Short Description", "Long Description"}}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var order, code, valid, shortDesc, longDesc string
		if m := icd10cmLineLong.FindStringSubmatch(line); m != nil {
			order, code, valid, shortDesc, longDesc = m[1], m[2], m[3], m[4], m[5]
		} else if m := icd10cmLineShort.FindStringSubmatch(line); m != nil {
			order, code, valid, shortDesc = m[1], m[2], m[3], m[4]
			longDesc = shortDesc
		} else {
			continue
		}

		t.Rows = append(t.Rows, []string{
			strings.TrimSpace(order),
			strings.ToUpper(strings.TrimSpace(code)),
			strings.TrimSpace(valid),
			strings.TrimSpace(shortDesc),
			strings.TrimSpace(longDesc),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Zero parsed lines is a hard failure here, unlike the cleaning pass
	// where an empty survivor set is acceptable.
	if len(t.Rows) == 0 {
		return nil, &ParseExhaustionError{Path: path}
	}
	return t, nil
}

func (s *icd10cmSource) Clean(t *table.Table) ([]internal.CodePair, error) {
	codeCol, err := table.FindColumn(t, "code", icd10cmCodeCandidates, table.MatchFraction(codes.ICD10Pattern))
	if err != nil {
		return nil, err
	}
	descCol, err := table.FindColumn(t, "description", icd10cmDescCandidates, table.MeanLength(), codeCol)
	if err != nil {
		return nil, err
	}

	pairs := pairsFromTable(t, codeCol, descCol)
	return codes.Clean(pairs, codes.CleanOptions{
		Uppercase: true,
		Validate:  codes.PatternValidator(codes.ICD10Pattern),
	}), nil
}
