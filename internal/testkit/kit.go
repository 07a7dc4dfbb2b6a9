// Package testkit provides sample course listings for tests.
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"courseeda/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// SampleCSV is a small course listing with text-encoded enrollment counts
const SampleCSV = `organization,course_rating,course_students_enrolled,course_difficulty,course_certificate_type
OrgA,4.5,1.2k,Intermediate,Verified
OrgB,4.0,3.5k,Beginner,Audit
OrgC,3.8,500,Advanced,Verified
OrgA,4.7,2m,Intermediate,Audit
OrgD,2.5,750,Beginner,None
OrgE,4.2,1.8k,Advanced,Verified
`

// OutlierRecord is a row whose enrollment lies far above the sample's IQR fence
var OutlierRecord = []string{"OrgF", "5.0", "10m", "Advanced", "Verified"}

// SampleRecords returns SampleCSV as records, header first
func SampleRecords() [][]string {
	lines := strings.Split(strings.TrimSpace(SampleCSV), "\n")
	records := make([][]string, len(lines))
	for i, line := range lines {
		records[i] = strings.Split(line, ",")
	}
	return records
}

// SampleTable builds a table from SampleCSV plus any extra records
func SampleTable(tb testing.TB, extra ...[]string) *dataset.Table {
	tb.Helper()
	records := append(SampleRecords(), extra...)
	table, err := dataset.FromRecords(records)
	if err != nil {
		tb.Fatalf("failed to build sample table: %v", err)
	}
	return table
}

// WriteFile writes content to dir/name, creating parent directories, and returns the path
func WriteFile(tb testing.TB, dir, name string, content []byte) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		tb.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteSampleCSV writes SampleCSV to dir/name and returns the path
func WriteSampleCSV(tb testing.TB, dir, name string) string {
	tb.Helper()
	return WriteFile(tb, dir, name, []byte(SampleCSV))
}

// WriteSampleXLSX writes SampleCSV's records to the given sheet of a new workbook
func WriteSampleXLSX(tb testing.TB, dir, name, sheet string) string {
	tb.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			tb.Fatalf("failed to create sheet %s: %v", sheet, err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			tb.Fatalf("failed to drop default sheet: %v", err)
		}
	} else {
		sheet = "Sheet1"
	}

	for r, record := range SampleRecords() {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			tb.Fatalf("bad coordinates: %v", err)
		}
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			tb.Fatalf("failed to write row %d: %v", r, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		tb.Fatalf("failed to save workbook: %v", err)
	}
	return path
}
