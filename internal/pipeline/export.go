package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"medref/internal"
)

var outputColumns = []string{"code", "description", "last_updated"}

// WriteLatestCSV persists a standardized record set to basePath with a .csv
// suffix enforced, exactly the three output columns in order, no index
// column. The destination is fully overwritten.
func WriteLatestCSV(records []internal.StandardizedRecord, basePath string) (string, error) {
	path := basePath
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		path += ".csv"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(file)
	_ = writer.Write(outputColumns)
	for _, r := range records {
		_ = writer.Write([]string{r.Code, r.Description, r.LastUpdated})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return "", err
	}
	return path, file.Close()
}

// ExportRecordsToXLSX writes the same three columns as a workbook.
func ExportRecordsToXLSX(records []internal.StandardizedRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range outputColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range records {
		row := i + 2
		set := func(col int, value string) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, r.Code)
		set(2, r.Description)
		set(3, r.LastUpdated)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
