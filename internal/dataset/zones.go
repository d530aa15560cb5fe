package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/taxiscope/taxi-backend-go/internal/models"
)

// Zone lookup column names
const (
	zoneColID      = "LocationID"
	zoneColBorough = "Borough"
	zoneColZone    = "Zone"
)

// ReadZoneFile reads the taxi zone lookup table from a CSV file
func ReadZoneFile(path string) ([]models.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &DatasetNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open zone file %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.WithTypes(map[string]series.Type{
		zoneColID:      series.Int,
		zoneColBorough: series.String,
		zoneColZone:    series.String,
	}))
	if df.Err != nil {
		return nil, fmt.Errorf("parse zone file %s: %w", path, df.Err)
	}

	for _, col := range []string{zoneColID, zoneColBorough, zoneColZone} {
		if df.Col(col).Err != nil {
			return nil, fmt.Errorf("zone file %s: missing column %s", path, col)
		}
	}

	zones := make([]models.Zone, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		id, err := df.Col(zoneColID).Elem(i).Int()
		if err != nil {
			return nil, fmt.Errorf("zone file %s row %d: bad %s: %w", path, i, zoneColID, err)
		}
		zones = append(zones, models.Zone{
			LocationID: int64(id),
			Borough:    df.Col(zoneColBorough).Elem(i).String(),
			Zone:       df.Col(zoneColZone).Elem(i).String(),
		})
	}
	return zones, nil
}

// ZoneIndex builds a LocationID lookup map. LocationID is unique in the
// reference table; a duplicate row silently wins.
func ZoneIndex(zones []models.Zone) map[int64]models.Zone {
	idx := make(map[int64]models.Zone, len(zones))
	for _, z := range zones {
		idx[z.LocationID] = z
	}
	return idx
}
