package profiling

import (
	"math"
	"sort"

	"courseeda/domain/dataset"
	apperrors "courseeda/internal/errors"
)

// Quantile returns the p-quantile (0 <= p <= 1) of data by linear interpolation
// between order statistics: h = (n-1)p (Hyndman-Fan type 7).
// NaN values are ignored; the result is NaN when no values remain.
func Quantile(data []float64, p float64) float64 {
	sorted := sortedFinite(data)
	return quantileSorted(sorted, p)
}

// Quartiles returns Q1 and Q3 of data using Quantile's interpolation
func Quartiles(data []float64) (q1, q3 float64) {
	sorted := sortedFinite(data)
	return quantileSorted(sorted, 0.25), quantileSorted(sorted, 0.75)
}

func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	low := sorted[int(lo)]
	return low + (h-lo)*(sorted[int(hi)]-low)
}

// sortedFinite returns a sorted copy of data without NaNs
func sortedFinite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// numericColumn returns the values of a numeric column, with NaN for missing cells
func numericColumn(table *dataset.Table, column string) ([]float64, error) {
	kind, ok := table.ColumnType(column)
	if !ok {
		return nil, apperrors.ColumnNotFound(column)
	}
	if !kind.IsNumeric() {
		return nil, apperrors.NonNumericColumn(column, string(kind))
	}
	col, _ := table.Column(column)
	return col.Float(), nil
}
