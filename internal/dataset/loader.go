// Package dataset locates and loads the course listing dataset.
//
// Relative dataset paths are resolved against the project root, which is the
// working directory, or its parent when running from the "notebooks"
// directory. Every error returned by the loader carries the resolved path,
// working directory, project root and operating system in its message, and
// keeps the original error reachable through errors.Is / errors.As.
package dataset

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"courseeda/adapters/tabular"
	domainDataset "courseeda/domain/dataset"
	"courseeda/internal"
	apperrors "courseeda/internal/errors"
	"courseeda/ports"
)

// Loader reads the dataset file through a TableReader
type Loader struct {
	reader      ports.TableReader
	workingDir  string
	projectRoot string
	options     ports.ReadOptions
	logger      *internal.Logger
}

var _ ports.DatasetLoader = (*Loader)(nil)

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithWorkingDir replaces the process working directory used for root detection
func WithWorkingDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.workingDir = dir
	}
}

// WithProjectRoot pins the project root instead of deriving it from the working directory
func WithProjectRoot(root string) LoaderOption {
	return func(l *Loader) {
		l.projectRoot = root
	}
}

// WithReadOptions sets delimiter and sheet options passed to the reader
func WithReadOptions(opts ports.ReadOptions) LoaderOption {
	return func(l *Loader) {
		l.options = opts
	}
}

// WithLogger sets the logger for load progress and failures
func WithLogger(logger *internal.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader. The working directory is captured once, here.
func NewLoader(reader ports.TableReader, opts ...LoaderOption) *Loader {
	l := &Loader{reader: reader, logger: internal.DefaultLogger}
	for _, opt := range opts {
		opt(l)
	}
	if l.workingDir == "" {
		l.workingDir = AmbientWorkingDir()
	}
	if l.projectRoot == "" {
		l.projectRoot = ProjectRoot(l.workingDir)
	}
	return l
}

// ProjectRoot returns the root relative paths are joined to
func (l *Loader) ProjectRoot() string {
	return l.projectRoot
}

// Load reads the dataset at path. An empty path loads DefaultDatasetPath and an
// empty encoding uses the platform default.
func (l *Loader) Load(ctx context.Context, path, encoding string) (*domainDataset.Table, error) {
	if path == "" {
		path = domainDataset.DefaultDatasetPath
	}

	attempted := path
	table, err := l.load(ctx, path, encoding, &attempted)
	if err != nil {
		l.logger.Error("[DataLoader] Failed to load %s: %v", attempted, err)
		return nil, apperrors.AppendLines(err,
			fmt.Sprintf("Operating system: %s", runtime.GOOS),
			fmt.Sprintf("Current directory: %s", l.workingDir),
			fmt.Sprintf("Attempted path: %s", attempted),
		)
	}
	return table, nil
}

func (l *Loader) load(ctx context.Context, path, encoding string, attempted *string) (*domainDataset.Table, error) {
	resolved, err := ResolvePath(path, l.projectRoot)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cannot resolve dataset path %q: %v", path, err))
	}
	*attempted = resolved

	if err := l.checkFile(resolved); err != nil {
		return nil, err
	}

	l.logger.Info("[DataLoader] Loading dataset from %s", resolved)

	opts := l.options
	opts.Encoding = encoding
	table, err := l.reader.ReadTable(ctx, resolved, opts)
	if err != nil {
		return nil, apperrors.ReadFailure(resolved, err)
	}

	rows, cols := table.Shape()
	l.logger.Info("[DataLoader] Loaded %d rows and %d columns", rows, cols)
	return table, nil
}

// checkFile fails with NOT_FOUND unless path is an existing regular file
func (l *Loader) checkFile(path string) error {
	info, err := os.Stat(path)
	if err == nil && info.Mode().IsRegular() {
		return nil
	}
	if err == nil {
		err = &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}

	message := fmt.Sprintf("Dataset file not found at: %s\n"+
		"Current directory: %s\n"+
		"Project root: %s\n"+
		"Operating system: %s\n"+
		"Ensure you're running from the project root or notebooks directory.",
		path, l.workingDir, l.projectRoot, runtime.GOOS)
	return apperrors.NotFound(message, err)
}

// LoadCourseraData loads a dataset with the default file reader, resolving
// relative paths from the current working directory
func LoadCourseraData(ctx context.Context, path, encoding string) (*domainDataset.Table, error) {
	return NewLoader(tabular.NewDataReader()).Load(ctx, path, encoding)
}
