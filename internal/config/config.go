package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"

	"courseeda/internal"
	"courseeda/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "EDA"

// Config represents the complete application configuration
type Config struct {
	Dataset  DatasetConfig
	Outliers OutlierConfig `envconfig:"OUTLIER"`
	Report   ReportConfig
	Log      LogConfig
}

// DatasetConfig locates and decodes the dataset file.
// Variables: EDA_DATASET_PATH, EDA_DATASET_ENCODING, EDA_DATASET_SHEET,
// EDA_DATASET_PROJECT_ROOT, EDA_DATASET_ENROLLMENT_COLUMN
type DatasetConfig struct {
	Path             string `default:"data/coursera_data.csv" validate:"required"`
	Encoding         string
	Sheet            string
	ProjectRoot      string `split_words:"true"`
	EnrollmentColumn string `split_words:"true" default:"course_students_enrolled" validate:"required"`
}

// OutlierConfig holds IQR fence settings (EDA_OUTLIER_MULTIPLIER)
type OutlierConfig struct {
	Multiplier float64 `default:"1.5" validate:"gt=0"`
}

// ReportConfig holds summary settings (EDA_REPORT_TOP_N)
type ReportConfig struct {
	TopN int `split_words:"true" default:"10" validate:"gte=0"`
}

// LogConfig holds logging settings (EDA_LOG_LEVEL)
type LogConfig struct {
	Level string `default:"INFO" validate:"oneof=ERROR WARN INFO DEBUG error warn info debug"`
}

// LogLevel returns the configured level, INFO when unset or unknown
func (c LogConfig) LogLevel() internal.LogLevel {
	level, _ := internal.ParseLogLevel(c.Level)
	return level
}

// Load reads an optional .env file, then the environment, and validates the result.
// Variables already set in the environment win over the .env file.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	config := &Config{}
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, err)
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// loadDotEnv loads the given files, or ./.env when none are given. A missing default file is not an error.
func loadDotEnv(files ...string) error {
	if len(files) > 0 {
		return godotenv.Load(files...)
	}
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

var validate = validator.New()

func validateConfig(config *Config) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ConfigInvalid(err.Error())
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s must satisfy %s (got %v)", fe.Namespace(), ruleText(fe), fe.Value()))
	}
	return errors.ConfigInvalid(strings.Join(problems, "; "))
}

func ruleText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
