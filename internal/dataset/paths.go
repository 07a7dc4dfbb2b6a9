package dataset

import (
	"os"
	"path/filepath"

	domainDataset "courseeda/domain/dataset"
)

// ProjectRoot returns the directory relative dataset paths are resolved against.
// Running from the "notebooks" directory resolves to its parent.
func ProjectRoot(workingDir string) string {
	if filepath.Base(workingDir) == domainDataset.NotebooksDirName {
		return filepath.Dir(workingDir)
	}
	return workingDir
}

// ResolvePath joins a relative candidate to root and returns it absolute and canonical.
// Symlinks are resolved when the target exists; otherwise the cleaned absolute path is returned.
func ResolvePath(candidate, root string) (string, error) {
	path := filepath.FromSlash(candidate)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// AmbientWorkingDir returns the process working directory, or "." if it cannot be determined
func AmbientWorkingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
