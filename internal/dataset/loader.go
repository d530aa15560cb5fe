package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/taxiscope/taxi-backend-go/internal/models"
)

// DatasetNotFoundError indicates a required input file is missing.
// Callers must not proceed with a partial dataset.
type DatasetNotFoundError struct {
	Path string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("dataset file not found: %s", e.Path)
}

// ReadTripFile reads all raw trip records from a parquet file
func ReadTripFile(path string) ([]models.RawTrip, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &DatasetNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat trip file %s: %w", path, err)
	}

	rows, err := parquet.ReadFile[models.RawTrip](path)
	if err != nil {
		return nil, fmt.Errorf("read trip file %s: %w", path, err)
	}
	return rows, nil
}
