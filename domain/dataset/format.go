package dataset

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Render writes the table as aligned text, one row per line, prefixed by a row label.
// labels gives the label for each row; nil labels the rows 0..n-1.
func (t *Table) Render(w io.Writer, labels []int) error {
	rows := t.Len()
	if rows == 0 {
		_, err := fmt.Fprintf(w, "Empty table (0 rows) columns: [%s]\n", strings.Join(t.Columns(), ", "))
		return err
	}
	if labels != nil && len(labels) != rows {
		return fmt.Errorf("render: %d labels for %d rows", len(labels), rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.Columns(), "\t"))

	ncol := len(t.Columns())
	cells := make([]string, ncol)
	for i := 0; i < rows; i++ {
		label := i
		if labels != nil {
			label = labels[i]
		}
		for c := 0; c < ncol; c++ {
			cells[c] = FormatValue(t.frame.Elem(i, c).Val())
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", label, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// String renders the table with default row labels
func (t *Table) String() string {
	var sb strings.Builder
	if err := t.Render(&sb, nil); err != nil {
		return fmt.Sprintf("<table: %v>", err)
	}
	return sb.String()
}

// FormatValue formats a cell value for display.
// Whole floats keep one decimal so they stay distinguishable from ints.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NaN"
	case int:
		return strconv.Itoa(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatFloat(val, 'f', 1, 64)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
