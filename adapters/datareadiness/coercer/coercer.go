package coercer

import (
	"sort"

	"courseeda/domain/dataset"
	apperrors "courseeda/internal/errors"

	"github.com/go-gota/gota/series"
)

// CellParser converts the text of one cell into an integer
type CellParser func(string) (int, error)

// CoerceColumn returns a copy of table whose column holds parse applied to every cell.
// The first cell that fails aborts the conversion; the input table is left untouched.
func CoerceColumn(table *dataset.Table, column string, parse CellParser) (*dataset.Table, error) {
	col, ok := table.Column(column)
	if !ok {
		return nil, apperrors.ColumnNotFound(column)
	}

	values := make([]int, col.Len())
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			return nil, apperrors.InvalidValue("row %d of column '%s' is missing", i, column)
		}
		n, err := parse(toString(elem.Val()))
		if err != nil {
			return nil, apperrors.Wrapf(err, "row %d of column '%s'", i, column)
		}
		values[i] = n
	}

	return table.WithColumn(series.New(values, series.Int, column))
}

// NormalizeEnrollment parses a text-encoded enrollment column into integer counts
func NormalizeEnrollment(table *dataset.Table, column string) (*dataset.Table, error) {
	return CoerceColumn(table, column, ParseEnrollment)
}

// CategoryCodes adds target as an integer column holding the category code of each cell in column.
// Codes number the distinct values in sorted order from 0; missing cells get -1.
func CategoryCodes(table *dataset.Table, column, target string) (*dataset.Table, error) {
	col, ok := table.Column(column)
	if !ok {
		return nil, apperrors.ColumnNotFound(column)
	}

	cells := make([]string, col.Len())
	missing := make([]bool, col.Len())
	distinct := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			missing[i] = true
			continue
		}
		cells[i] = toString(elem.Val())
		distinct[cells[i]] = struct{}{}
	}

	categories := make([]string, 0, len(distinct))
	for v := range distinct {
		categories = append(categories, v)
	}
	sortCategories(categories, dataset.ColumnType(col.Type()))

	index := make(map[string]int, len(categories))
	for i, v := range categories {
		index[v] = i
	}

	codes := make([]int, col.Len())
	for i, cell := range cells {
		if missing[i] {
			codes[i] = -1
			continue
		}
		codes[i] = index[cell]
	}
	return table.WithColumn(series.New(codes, series.Int, target))
}

// sortCategories orders numeric categories by value and everything else lexically
func sortCategories(categories []string, kind dataset.ColumnType) {
	if !kind.IsNumeric() {
		sort.Strings(categories)
		return
	}
	values := series.New(categories, series.Float, "").Float()
	order := make([]int, len(categories))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })
	sorted := make([]string, len(categories))
	for i, idx := range order {
		sorted[i] = categories[idx]
	}
	copy(categories, sorted)
}

// toString renders a cell value the way it would appear in the source file
func toString(val interface{}) string {
	if s, ok := val.(string); ok {
		return s
	}
	return dataset.FormatValue(val)
}
