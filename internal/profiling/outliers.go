package profiling

import (
	"fmt"
	"io"
	"os"

	"courseeda/domain/dataset"
)

// DefaultIQRMultiplier is Tukey's fence factor
const DefaultIQRMultiplier = 1.5

// OutlierReport describes the rows of a column that fall outside the IQR fences
type OutlierReport struct {
	Column     string
	Q1         float64
	Q3         float64
	IQR        float64
	Multiplier float64
	LowerBound float64
	UpperBound float64
	// Indexes are the positions of the outlier rows in the input table
	Indexes []int
	// Rows holds the outlier rows with every column of the input table
	Rows *dataset.Table
}

// Count returns the number of outlier rows
func (r *OutlierReport) Count() int {
	return len(r.Indexes)
}

// Print writes the report header followed by the outlier rows
func (r *OutlierReport) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Potential outliers for '%s':\n", r.Column); err != nil {
		return err
	}
	return r.Rows.Render(w, r.Indexes)
}

// OutlierDetector flags values outside [Q1 - k*IQR, Q3 + k*IQR]
type OutlierDetector struct {
	out        io.Writer
	multiplier float64
}

// DetectorOption configures an OutlierDetector
type DetectorOption func(*OutlierDetector)

// WithOutput sets where DetectAndPrint writes reports
func WithOutput(w io.Writer) DetectorOption {
	return func(d *OutlierDetector) {
		d.out = w
	}
}

// WithMultiplier sets the fence factor k; non-positive values keep the default
func WithMultiplier(k float64) DetectorOption {
	return func(d *OutlierDetector) {
		if k > 0 {
			d.multiplier = k
		}
	}
}

// NewOutlierDetector creates a detector printing to stdout with k = 1.5
func NewOutlierDetector(opts ...DetectorOption) *OutlierDetector {
	d := &OutlierDetector{
		out:        os.Stdout,
		multiplier: DefaultIQRMultiplier,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect computes the IQR fences of a numeric column and collects the rows strictly outside them.
// Missing cells are ignored. The input table is not modified.
func (d *OutlierDetector) Detect(table *dataset.Table, column string) (*OutlierReport, error) {
	values, err := numericColumn(table, column)
	if err != nil {
		return nil, err
	}

	q1, q3 := Quartiles(values)
	iqr := q3 - q1
	report := &OutlierReport{
		Column:     column,
		Q1:         q1,
		Q3:         q3,
		IQR:        iqr,
		Multiplier: d.multiplier,
		LowerBound: q1 - d.multiplier*iqr,
		UpperBound: q3 + d.multiplier*iqr,
		Indexes:    []int{},
	}

	for i, v := range values {
		if v < report.LowerBound || v > report.UpperBound {
			report.Indexes = append(report.Indexes, i)
		}
	}

	report.Rows, err = table.Subset(report.Indexes)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// DetectAndPrint runs Detect and writes the report to the detector's output
func (d *OutlierDetector) DetectAndPrint(table *dataset.Table, column string) (*OutlierReport, error) {
	report, err := d.Detect(table, column)
	if err != nil {
		return nil, err
	}
	if err := d.Print(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Print writes report to the detector's output
func (d *OutlierDetector) Print(report *OutlierReport) error {
	if err := report.Print(d.out); err != nil {
		return fmt.Errorf("failed to print outlier report: %w", err)
	}
	return nil
}

// DetectAndPrintOutliers reports IQR outliers of column on stdout
func DetectAndPrintOutliers(table *dataset.Table, column string) (*OutlierReport, error) {
	return NewOutlierDetector().DetectAndPrint(table, column)
}
