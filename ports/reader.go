package ports

import (
	"context"

	"courseeda/domain/dataset"
)

// ReadOptions controls how a tabular file is decoded
type ReadOptions struct {
	// Encoding names the text encoding of the file ("latin1", "utf-16", ...).
	// Empty means the platform default (UTF-8).
	Encoding string
	// Delimiter is the CSV field separator; zero means ','.
	Delimiter rune
	// Sheet selects the worksheet of a spreadsheet; empty means the first sheet.
	Sheet string
}

// TableReader parses a tabular file into a Table.
// Implementations must not retry and must return the underlying error unchanged in meaning.
type TableReader interface {
	ReadTable(ctx context.Context, path string, opts ReadOptions) (*dataset.Table, error)
}
