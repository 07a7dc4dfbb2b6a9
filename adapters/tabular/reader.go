package tabular

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"courseeda/domain/dataset"
	"courseeda/ports"
)

// File types understood by DataReader
const (
	FileTypeCSV  = "csv"
	FileTypeXLSX = "xlsx"
)

// DataReader handles reading CSV and Excel files into tables
type DataReader struct{}

var _ ports.TableReader = (*DataReader)(nil)

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader() *DataReader {
	return &DataReader{}
}

// FileType returns the reader used for path based on its extension.
// Anything that is not a spreadsheet is read as delimited text.
func FileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FileTypeXLSX
	default:
		return FileTypeCSV
	}
}

// ReadTable reads path into a table, detecting column types from the values
func (r *DataReader) ReadTable(ctx context.Context, path string, opts ports.ReadOptions) (*dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fileType := FileType(path)
	start := time.Now()

	var (
		table *dataset.Table
		err   error
	)
	switch fileType {
	case FileTypeXLSX:
		table, err = readExcel(path, opts.Sheet)
	default:
		table, err = readCSV(path, opts)
	}
	if err != nil {
		return nil, err
	}

	rows, cols := table.Shape()
	log.Printf("[DataReader] %s file read in %.2fms (%d rows, %d columns)",
		strings.ToUpper(fileType), float64(time.Since(start).Nanoseconds())/1e6, rows, cols)
	return table, nil
}

// padRecords makes every record as wide as the header.
// Spreadsheet rows omit trailing empty cells.
func padRecords(records [][]string) ([][]string, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	width := len(records[0])
	for i, rec := range records {
		if len(rec) > width {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i, len(rec), width)
		}
		for len(rec) < width {
			rec = append(rec, "")
		}
		records[i] = rec
	}
	return records, nil
}
