package tabular

import (
	"fmt"
	"os"

	"courseeda/domain/dataset"
	"courseeda/ports"

	"github.com/go-gota/gota/dataframe"
)

// readCSV decodes path with the requested encoding and parses it with a header row
func readCSV(path string, opts ports.ReadOptions) (*dataset.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	decoded, err := decodingReader(file, opts.Encoding)
	if err != nil {
		return nil, err
	}

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	frame := dataframe.ReadCSV(decoded,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithDelimiter(delimiter),
		dataframe.NaNValues(dataset.MissingValues),
	)
	if frame.Err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", frame.Err)
	}
	return dataset.NewTable(frame)
}
