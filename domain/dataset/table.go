package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is an ordered set of rows over named, typed columns.
// Column order is the order of the source file. Transforming methods return a new Table.
type Table struct {
	frame dataframe.DataFrame
}

// NewTable wraps a loaded data frame
func NewTable(frame dataframe.DataFrame) (*Table, error) {
	if frame.Err != nil {
		return nil, frame.Err
	}
	return &Table{frame: frame}, nil
}

// MissingValues are the cell texts read as missing values
var MissingValues = []string{"", "NA", "N/A", "NaN", "nan", "NULL", "null", "<nil>"}

// FromRecords builds a table from string records whose first row is the header.
// Column types are detected from the values.
func FromRecords(records [][]string) (*Table, error) {
	frame := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingValues),
	)
	return NewTable(frame)
}

// FromColumns builds a table from already typed columns
func FromColumns(columns ...series.Series) (*Table, error) {
	return NewTable(dataframe.New(columns...))
}

// Frame exposes the underlying data frame
func (t *Table) Frame() dataframe.DataFrame {
	return t.frame
}

// Columns returns the column names in source order
func (t *Table) Columns() []string {
	return t.frame.Names()
}

// Shape returns the number of rows and columns
func (t *Table) Shape() (int, int) {
	return t.frame.Dims()
}

// Len returns the number of rows
func (t *Table) Len() int {
	return t.frame.Nrow()
}

// HasColumn reports whether name is one of the table's columns
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

func (t *Table) columnIndex(name string) int {
	for i, col := range t.frame.Names() {
		if col == name {
			return i
		}
	}
	return -1
}

// Column returns the named column
func (t *Table) Column(name string) (series.Series, bool) {
	if !t.HasColumn(name) {
		return series.Series{}, false
	}
	return t.frame.Col(name), true
}

// ColumnType returns the detected type of the named column
func (t *Table) ColumnType(name string) (ColumnType, bool) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return "", false
	}
	return ColumnType(t.frame.Types()[idx]), true
}

// Row returns row i keyed by column name
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("row %d out of range [0, %d)", i, t.Len())
	}
	row := make(Row, t.frame.Ncol())
	for c, name := range t.frame.Names() {
		row[name] = t.frame.Elem(i, c).Val()
	}
	return row, nil
}

// Records returns all rows as strings, header first
func (t *Table) Records() [][]string {
	return t.frame.Records()
}

// Subset returns a table with only the given rows, in the given order
func (t *Table) Subset(rows []int) (*Table, error) {
	for _, r := range rows {
		if r < 0 || r >= t.Len() {
			return nil, fmt.Errorf("row %d out of range [0, %d)", r, t.Len())
		}
	}
	return NewTable(t.frame.Subset(rows))
}

// WithColumn returns a copy of the table with s added, or replacing the column of the same name
func (t *Table) WithColumn(s series.Series) (*Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Len() != t.Len() {
		return nil, fmt.Errorf("column '%s' has %d values, table has %d rows", s.Name, s.Len(), t.Len())
	}
	return NewTable(t.frame.Mutate(s))
}
