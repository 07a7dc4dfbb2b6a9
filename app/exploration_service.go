package app

import (
	"context"
	"time"

	"courseeda/adapters/datareadiness/coercer"
	"courseeda/adapters/tabular"
	"courseeda/domain/core"
	"courseeda/domain/dataset"
	"courseeda/internal"
	"courseeda/internal/config"
	datasetloader "courseeda/internal/dataset"
	"courseeda/internal/errors"
	"courseeda/internal/profiling"
	"courseeda/ports"

	"golang.org/x/sync/errgroup"
)

// ExplorationService runs the standard first pass over the course listing:
// load, normalize enrollment counts, report outliers and summarize.
type ExplorationService struct {
	cfg      config.Config
	loader   ports.DatasetLoader
	detector *profiling.OutlierDetector
	logger   *internal.Logger
}

// Exploration is the result of one run
type Exploration struct {
	RunID core.RunID
	// DatasetHash fingerprints the loaded table before normalization
	DatasetHash core.Hash
	Table       *dataset.Table
	Outliers  map[string]*profiling.OutlierReport
	Summaries map[string]profiling.ColumnSummary
	// TopOrganizations is empty when the table has no organization column
	TopOrganizations []profiling.ValueCount
	RuntimeMs        int64
}

// NewExplorationService creates an exploration service
func NewExplorationService(cfg config.Config, loader ports.DatasetLoader, detector *profiling.OutlierDetector) *ExplorationService {
	return &ExplorationService{
		cfg:      cfg,
		loader:   loader,
		detector: detector,
		logger:   internal.DefaultLogger,
	}
}

// WithLogger replaces the service logger
func (s *ExplorationService) WithLogger(logger *internal.Logger) *ExplorationService {
	s.logger = logger
	return s
}

// NewExplorationServiceFromConfig wires the file reader, loader and stdout detector from cfg
func NewExplorationServiceFromConfig(cfg config.Config) *ExplorationService {
	logger := internal.NewLogger(cfg.Log.LogLevel())
	opts := []datasetloader.LoaderOption{
		datasetloader.WithReadOptions(ports.ReadOptions{Sheet: cfg.Dataset.Sheet}),
		datasetloader.WithLogger(logger),
	}
	if cfg.Dataset.ProjectRoot != "" {
		opts = append(opts, datasetloader.WithProjectRoot(cfg.Dataset.ProjectRoot))
	}
	loader := datasetloader.NewLoader(tabular.NewDataReader(), opts...)
	detector := profiling.NewOutlierDetector(profiling.WithMultiplier(cfg.Outliers.Multiplier))
	return NewExplorationService(cfg, loader, detector).WithLogger(logger)
}

// Run loads the configured dataset and computes the exploration.
// Errors from any step are returned unchanged apart from step context.
func (s *ExplorationService) Run(ctx context.Context) (*Exploration, error) {
	startTime := time.Now()

	table, err := s.loader.Load(ctx, s.cfg.Dataset.Path, s.cfg.Dataset.Encoding)
	if err != nil {
		return nil, err
	}

	hash := core.HashRecords(table.Records())

	enrollment := s.cfg.Dataset.EnrollmentColumn
	table, err = coercer.NormalizeEnrollment(table, enrollment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to normalize enrollment counts")
	}

	result := &Exploration{
		RunID:       core.NewRunID(),
		DatasetHash: hash,
		Table:       table,
		Outliers:    make(map[string]*profiling.OutlierReport),
		Summaries:   make(map[string]profiling.ColumnSummary),
	}

	// Columns are profiled concurrently and printed in a fixed order afterwards
	columns := s.numericColumns(table)
	reports := make([]*profiling.OutlierReport, len(columns))
	summaries := make([]profiling.ColumnSummary, len(columns))
	var g errgroup.Group
	for i, column := range columns {
		i, column := i, column
		g.Go(func() error {
			report, err := s.detector.Detect(table, column)
			if err != nil {
				return errors.Wrapf(err, "outlier detection failed for %s", column)
			}
			summary, err := profiling.Describe(table, column)
			if err != nil {
				return errors.Wrapf(err, "failed to describe %s", column)
			}
			reports[i], summaries[i] = report, summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, column := range columns {
		if err := s.detector.Print(reports[i]); err != nil {
			return nil, err
		}
		s.logger.Debug("[ExplorationService] %s: %d outliers outside [%g, %g]",
			column, reports[i].Count(), reports[i].LowerBound, reports[i].UpperBound)
		result.Outliers[column] = reports[i]
		result.Summaries[column] = summaries[i]
	}

	if table.HasColumn(dataset.ColumnOrganization) {
		result.TopOrganizations, err = profiling.ValueCounts(table, dataset.ColumnOrganization, s.cfg.Report.TopN)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count organizations")
		}
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	s.logger.Info("[ExplorationService] Run %s explored %d rows of dataset %s in %dms (%d outlier reports)",
		result.RunID, table.Len(), hash.Short(), result.RuntimeMs, len(result.Outliers))
	return result, nil
}

// numericColumns returns the enrollment column and, when numeric, the rating column
func (s *ExplorationService) numericColumns(table *dataset.Table) []string {
	columns := []string{s.cfg.Dataset.EnrollmentColumn}
	if kind, ok := table.ColumnType(dataset.ColumnRating); ok && kind.IsNumeric() && dataset.ColumnRating != columns[0] {
		columns = append(columns, dataset.ColumnRating)
	}
	return columns
}
