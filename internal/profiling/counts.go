package profiling

import (
	"sort"

	"courseeda/domain/dataset"
	apperrors "courseeda/internal/errors"
)

// ValueCount is the number of rows holding one distinct value
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts counts the distinct values of a column, most frequent first.
// Ties are ordered by value. Missing cells are not counted. limit <= 0 returns every value.
func ValueCounts(table *dataset.Table, column string, limit int) ([]ValueCount, error) {
	col, ok := table.Column(column)
	if !ok {
		return nil, apperrors.ColumnNotFound(column)
	}

	counts := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			continue
		}
		counts[dataset.FormatValue(elem.Val())]++
	}

	result := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		result = append(result, ValueCount{Value: v, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
