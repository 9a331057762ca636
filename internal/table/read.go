package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadDelimited loads a text file trying tab separation first, then comma,
// treating the first row as headers. A single-column result means neither
// delimiter was found; it is returned as-is for the caller to decide on a
// fixed-width fallback.
func ReadDelimited(path string) (*Table, error) {
	tabbed, tabErr := readSeparated(path, '\t')
	if tabErr == nil && len(tabbed.Columns) > 1 {
		return tabbed, nil
	}
	comma, commaErr := readSeparated(path, ',')
	if commaErr == nil && len(comma.Columns) > 1 {
		return comma, nil
	}
	if tabErr == nil {
		return tabbed, nil
	}
	if commaErr == nil {
		return comma, nil
	}
	return nil, tabErr
}

// ReadCSV loads a comma-separated file with a required header row.
func ReadCSV(path string) (*Table, error) {
	return readSeparated(path, ',')
}

// ReadTSV loads a tab-separated file with a required header row.
func ReadTSV(path string) (*Table, error) {
	return readSeparated(path, '\t')
}

// ReadCSVHeader reads only the header row.
func ReadCSVHeader(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := newCSVReader(file, ',')
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	return trimAll(header), nil
}

// ReadCSVSample loads the header plus at most maxRows rows, for heuristics
// that should not touch the whole file.
func ReadCSVSample(path string, maxRows int) (*Table, error) {
	return readLimited(path, ',', maxRows)
}

// ReadCSVColumns streams the file keeping only the named columns, in the
// order given. Requested columns missing from the header are an error.
func ReadCSVColumns(path string, cols []string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := newCSVReader(file, ',')
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	header = trimAll(header)

	indices := make([]int, 0, len(cols))
	for _, c := range cols {
		idx := -1
		for i, h := range header {
			if h == c {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("column %q not present in %s", c, path)
		}
		indices = append(indices, idx)
	}

	t := &Table{Columns: append([]string(nil), cols...)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]string, len(indices))
		for i, idx := range indices {
			row[i] = Cell(record, idx)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func readSeparated(path string, sep rune) (*Table, error) {
	return readLimited(path, sep, -1)
}

func readLimited(path string, sep rune, maxRows int) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := newCSVReader(file, sep)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	t := &Table{Columns: trimAll(header)}
	for maxRows < 0 || len(t.Rows) < maxRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

func newCSVReader(file *os.File, sep rune) *csv.Reader {
	buf := bufio.NewReaderSize(file, 256*1024)

	// Skip a UTF-8 BOM if present.
	if bom, err := buf.Peek(3); err == nil && len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	reader := csv.NewReader(buf)
	reader.Comma = sep
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
