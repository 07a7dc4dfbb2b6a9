package profiling

import (
	"math"
	"sort"

	"courseeda/domain/dataset"
	apperrors "courseeda/internal/errors"

	"github.com/montanaflynn/stats"
)

// ColumnSummary holds the descriptive statistics of a numeric column
type ColumnSummary struct {
	Column  string
	Count   int // non-missing values
	Missing int
	Mean    float64
	StdDev  float64 // sample standard deviation
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
}

// Describe summarizes a numeric column. Statistics of a column without values are NaN.
func Describe(table *dataset.Table, column string) (ColumnSummary, error) {
	summary := ColumnSummary{Column: column}

	values, err := numericColumn(table, column)
	if err != nil {
		return summary, err
	}
	data := sortedFinite(values)
	summary.Count = len(data)
	summary.Missing = len(values) - len(data)

	nan := math.NaN()
	summary.Mean, summary.StdDev, summary.Min, summary.Median, summary.Max = nan, nan, nan, nan, nan
	summary.Q1, summary.Q3 = quantileSorted(data, 0.25), quantileSorted(data, 0.75)
	if len(data) == 0 {
		return summary, nil
	}

	// Basic summary statistics
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}
	if len(data) > 1 {
		if summary.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// GroupStat is the mean of a numeric column within one category
type GroupStat struct {
	Group string
	Count int
	Mean  float64
}

// GroupMean averages valueColumn per distinct value of groupColumn, sorted by descending mean.
// Rows missing either cell are skipped.
func GroupMean(table *dataset.Table, groupColumn, valueColumn string) ([]GroupStat, error) {
	groups, ok := table.Column(groupColumn)
	if !ok {
		return nil, apperrors.ColumnNotFound(groupColumn)
	}
	values, err := numericColumn(table, valueColumn)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]float64)
	for i, v := range values {
		elem := groups.Elem(i)
		if elem.IsNA() || math.IsNaN(v) {
			continue
		}
		key := dataset.FormatValue(elem.Val())
		buckets[key] = append(buckets[key], v)
	}

	result := make([]GroupStat, 0, len(buckets))
	for group, data := range buckets {
		mean, err := stats.Mean(data)
		if err != nil {
			return nil, err
		}
		result = append(result, GroupStat{Group: group, Count: len(data), Mean: mean})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Mean != result[j].Mean {
			return result[i].Mean > result[j].Mean
		}
		return result[i].Group < result[j].Group
	})
	return result, nil
}
