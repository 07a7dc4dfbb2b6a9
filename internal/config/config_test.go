package config

import (
	"os"
	"path/filepath"
	"testing"

	"courseeda/internal"
	"courseeda/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/coursera_data.csv", cfg.Dataset.Path)
	assert.Equal(t, "", cfg.Dataset.Encoding)
	assert.Equal(t, "", cfg.Dataset.Sheet)
	assert.Equal(t, "", cfg.Dataset.ProjectRoot)
	assert.Equal(t, "course_students_enrolled", cfg.Dataset.EnrollmentColumn)
	assert.Equal(t, 1.5, cfg.Outliers.Multiplier)
	assert.Equal(t, 10, cfg.Report.TopN)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, internal.LogLevelInfo, cfg.Log.LogLevel())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EDA_DATASET_PATH", "data/other.xlsx")
	t.Setenv("EDA_DATASET_ENCODING", "latin-1")
	t.Setenv("EDA_DATASET_SHEET", "Courses")
	t.Setenv("EDA_DATASET_PROJECT_ROOT", "/srv/eda")
	t.Setenv("EDA_DATASET_ENROLLMENT_COLUMN", "enrolled")
	t.Setenv("EDA_OUTLIER_MULTIPLIER", "3")
	t.Setenv("EDA_REPORT_TOP_N", "0")
	t.Setenv("EDA_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/other.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "latin-1", cfg.Dataset.Encoding)
	assert.Equal(t, "Courses", cfg.Dataset.Sheet)
	assert.Equal(t, "/srv/eda", cfg.Dataset.ProjectRoot)
	assert.Equal(t, "enrolled", cfg.Dataset.EnrollmentColumn)
	assert.Equal(t, 3.0, cfg.Outliers.Multiplier)
	assert.Equal(t, 0, cfg.Report.TopN)
	assert.Equal(t, internal.LogLevelDebug, cfg.Log.LogLevel())
}

func TestLoadDotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "EDA_DATASET_PATH=from_file.csv\nEDA_REPORT_TOP_N=5\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	// godotenv sets process variables; the environment wins over the file
	t.Setenv("EDA_REPORT_TOP_N", "7")
	t.Cleanup(func() { os.Unsetenv("EDA_DATASET_PATH") })

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from_file.csv", cfg.Dataset.Path)
	assert.Equal(t, 7, cfg.Report.TopN)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoadValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		message string
	}{
		{name: "zero multiplier", key: "EDA_OUTLIER_MULTIPLIER", value: "0", message: "Multiplier"},
		{name: "negative top n", key: "EDA_REPORT_TOP_N", value: "-1", message: "TopN"},
		{name: "unknown log level", key: "EDA_LOG_LEVEL", value: "TRACE", message: "Level"},
		{name: "not a number", key: "EDA_OUTLIER_MULTIPLIER", value: "lots", message: "MULTIPLIER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
