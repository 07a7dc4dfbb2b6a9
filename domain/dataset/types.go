package dataset

import (
	"path/filepath"

	"github.com/go-gota/gota/series"
)

// ColumnType is the per-column value type detected when a table is loaded
type ColumnType string

const (
	ColumnString ColumnType = ColumnType(series.String)
	ColumnInt    ColumnType = ColumnType(series.Int)
	ColumnFloat  ColumnType = ColumnType(series.Float)
	ColumnBool   ColumnType = ColumnType(series.Bool)
)

// IsNumeric reports whether values of this type can be used in quantile computations
func (t ColumnType) IsNumeric() bool {
	return t == ColumnInt || t == ColumnFloat
}

// Well-known Coursera listing columns
const (
	ColumnOrganization    = "organization"
	ColumnCourseTitle     = "course_title"
	ColumnRating          = "course_rating"
	ColumnStudentsEnroll  = "course_students_enrolled"
	ColumnDifficulty      = "course_difficulty"
	ColumnCertificateType = "course_certificate_type"
)

// NotebooksDirName is the working directory name whose parent is treated as the project root
const NotebooksDirName = "notebooks"

// DefaultDatasetPath is the dataset location relative to the project root
var DefaultDatasetPath = filepath.Join("data", "coursera_data.csv")

// Row is a single table row keyed by column name.
// Missing cells hold nil.
type Row map[string]interface{}
