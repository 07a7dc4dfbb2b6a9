package ports

import (
	"context"

	"courseeda/domain/dataset"
)

// DatasetLoader resolves a dataset path and loads it into a Table
type DatasetLoader interface {
	Load(ctx context.Context, path, encoding string) (*dataset.Table, error)
}
