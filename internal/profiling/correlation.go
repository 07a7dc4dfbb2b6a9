package profiling

import (
	"math"

	"courseeda/domain/dataset"
	apperrors "courseeda/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix holds pairwise Pearson coefficients; Values[i][j] pairs Columns[i] and Columns[j]
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
	// Rows is the number of complete rows the coefficients were computed from
	Rows int
}

// At returns the coefficient for two columns of the matrix
func (m *CorrelationMatrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, c := range m.Columns {
		if c == a {
			i = k
		}
		if c == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// Correlate computes the Pearson correlation matrix of numeric columns.
// Rows with a missing value in any of the columns are dropped first.
func Correlate(table *dataset.Table, columns ...string) (*CorrelationMatrix, error) {
	if len(columns) < 2 {
		return nil, apperrors.InvalidInput("correlation needs at least two columns")
	}

	raw := make([][]float64, len(columns))
	for i, column := range columns {
		values, err := numericColumn(table, column)
		if err != nil {
			return nil, err
		}
		raw[i] = values
	}

	// Keep complete rows only
	data := make([][]float64, len(columns))
	for r := 0; r < table.Len(); r++ {
		complete := true
		for i := range columns {
			if math.IsNaN(raw[i][r]) {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for i := range columns {
			data[i] = append(data[i], raw[i][r])
		}
	}

	rows := len(data[0])
	if rows < 2 {
		return nil, apperrors.InvalidInput("correlation needs at least two complete rows")
	}

	values := make([][]float64, len(columns))
	for i := range columns {
		values[i] = make([]float64, len(columns))
		values[i][i] = 1
	}
	for i := range columns {
		for j := i + 1; j < len(columns); j++ {
			c := stat.Correlation(data[i], data[j], nil)
			values[i][j] = c
			values[j][i] = c
		}
	}

	return &CorrelationMatrix{Columns: columns, Values: values, Rows: rows}, nil
}
