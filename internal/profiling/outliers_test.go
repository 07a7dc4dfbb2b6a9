package profiling

import (
	"bytes"
	"strings"
	"testing"

	"courseeda/adapters/datareadiness/coercer"
	"courseeda/domain/dataset"
	apperrors "courseeda/internal/errors"
	"courseeda/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enrolled = dataset.ColumnStudentsEnroll

func normalizedSample(t *testing.T, extra ...[]string) *dataset.Table {
	t.Helper()
	table, err := coercer.NormalizeEnrollment(testkit.SampleTable(t, extra...), enrolled)
	require.NoError(t, err)
	return table
}

func TestDetectAndPrintOutliers(t *testing.T) {
	table := normalizedSample(t, testkit.OutlierRecord)

	var out bytes.Buffer
	report, err := NewOutlierDetector(WithOutput(&out)).DetectAndPrint(table, enrolled)
	require.NoError(t, err)

	printed := out.String()
	assert.Contains(t, printed, "Potential outliers for 'course_students_enrolled':")
	assert.Contains(t, printed, "OrgF")
	assert.Contains(t, printed, "10000000")

	// sorted: 500 750 1200 1800 3500 2000000 10000000
	assert.InDelta(t, 975.0, report.Q1, 1e-9)
	assert.InDelta(t, 1001750.0, report.Q3, 1e-9)
	assert.InDelta(t, 1000775.0, report.IQR, 1e-9)
	assert.InDelta(t, 2502912.5, report.UpperBound, 1e-9)
	assert.Equal(t, []int{6}, report.Indexes)
	assert.Equal(t, 1, report.Rows.Len())

	row, err := report.Rows.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "OrgF", row[dataset.ColumnOrganization])
	assert.Equal(t, 10000000, row[enrolled])
}

func TestDetectNoOutliersStillPrintsHeader(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"organization", "enrolled"},
		{"OrgA", "1200"},
		{"OrgB", "2500"},
		{"OrgC", "500"},
		{"OrgD", "750"},
		{"OrgE", "1800"},
	})
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := NewOutlierDetector(WithOutput(&out)).DetectAndPrint(table, "enrolled")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Count())
	assert.True(t, strings.HasPrefix(out.String(), "Potential outliers for 'enrolled':\n"))
	assert.Contains(t, out.String(), "Empty table (0 rows)")
}

func TestDetectLowOutlier(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"organization", "course_rating"},
		{"OrgA", "4.5"},
		{"OrgB", "4.6"},
		{"OrgC", "4.7"},
		{"OrgD", "4.8"},
		{"OrgE", "0.5"},
	})
	require.NoError(t, err)

	report, err := NewOutlierDetector(WithOutput(&bytes.Buffer{})).Detect(table, "course_rating")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, report.Indexes)
	assert.Less(t, 0.5, report.LowerBound)
}

func TestDetectMultiplier(t *testing.T) {
	table := normalizedSample(t, testkit.OutlierRecord)

	report, err := NewOutlierDetector(WithMultiplier(20)).Detect(table, enrolled)
	require.NoError(t, err)
	assert.Equal(t, 20.0, report.Multiplier)
	assert.Empty(t, report.Indexes)

	report, err = NewOutlierDetector(WithMultiplier(-1)).Detect(table, enrolled)
	require.NoError(t, err)
	assert.Equal(t, DefaultIQRMultiplier, report.Multiplier)
}

func TestDetectInvalidColumn(t *testing.T) {
	table := testkit.SampleTable(t)

	var out bytes.Buffer
	_, err := NewOutlierDetector(WithOutput(&out)).DetectAndPrint(table, "non_existent_column")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeColumnNotFound, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "non_existent_column")
	assert.Empty(t, out.String())
}

func TestDetectNonNumeric(t *testing.T) {
	table := testkit.SampleTable(t)

	for _, column := range []string{dataset.ColumnOrganization, enrolled} {
		_, err := NewOutlierDetector(WithOutput(&bytes.Buffer{})).Detect(table, column)
		require.Error(t, err, column)
		assert.Equal(t, apperrors.CodeNonNumericColumn, apperrors.GetCode(err), column)
	}
}

func TestDetectIgnoresMissingValues(t *testing.T) {
	table, err := dataset.FromRecords([][]string{
		{"organization", "course_rating"},
		{"OrgA", "4.5"},
		{"OrgB", ""},
		{"OrgC", "4.7"},
		{"OrgD", "4.6"},
	})
	require.NoError(t, err)

	report, err := NewOutlierDetector().Detect(table, "course_rating")
	require.NoError(t, err)
	assert.InDelta(t, 4.55, report.Q1, 1e-9)
	assert.InDelta(t, 4.65, report.Q3, 1e-9)
	assert.Empty(t, report.Indexes)
}

func TestDetectDoesNotMutateInput(t *testing.T) {
	table := normalizedSample(t, testkit.OutlierRecord)
	before := table.Records()

	_, err := NewOutlierDetector(WithOutput(&bytes.Buffer{})).DetectAndPrint(table, enrolled)
	require.NoError(t, err)
	assert.Equal(t, before, table.Records())
}
