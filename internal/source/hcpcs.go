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

var (
	// Code at line start (A-V plus four digits), rest is description text.
	hcpcsLine = regexp.MustCompile(`^\s*([A-V]\d{4})\s+(.*)$`)
	// The description is the first field before a big gap or tab.
	hcpcsFieldGap = regexp.MustCompile(`\s{2,}|\t`)
)

type hcpcsSource struct{}

func (s *hcpcsSource) Name() internal.SourceName { return internal.SourceHCPCS }

func (s *hcpcsSource) Load(path string) (*table.Table, error) {
	if err := requireInput(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t := &table.Table{Columns: []string{"code", "description"}}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := hcpcsLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		rest := strings.TrimSpace(m[2])
		if rest == "" {
			continue
		}
		desc := hcpcsFieldGap.Split(rest, 2)[0]
		if desc == "" {
			continue
		}
		t.Rows = append(t.Rows, []string{m[1], desc})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *hcpcsSource) Clean(t *table.Table) ([]internal.CodePair, error) {
	pairs := pairsFromTable(t, "code", "description")
	return codes.Clean(pairs, codes.CleanOptions{
		Validate: codes.PatternValidator(codes.HCPCSPattern),
	}), nil
}

func pairsFromTable(t *table.Table, codeCol, descCol string) []internal.CodePair {
	codeIdx := t.ColumnIndex(codeCol)
	descIdx := t.ColumnIndex(descCol)
	out := make([]internal.CodePair, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, internal.CodePair{
			Code:        table.Cell(row, codeIdx),
			Description: table.Cell(row, descIdx),
		})
	}
	return out
}
