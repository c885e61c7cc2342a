package weather

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/i474232898/telescope-weather/internal/logger"
)

const exportFileTimeLayout = "20060102_150405"

// CSVHeader is the fixed column order of the export.
var CSVHeader = []string{
	"datetime",
	"location",
	"temperature",
	"humidity",
	"wind_speed",
	"pressure",
	"visibility",
	"cloud_cover",
}

func newExportBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "csv-export",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("circuit breaker state changed")
		},
	})
}

// ExportCSV renders the saved-data series for now as CSV.
// Repeated render failures open a circuit breaker and later calls fail fast.
func (s *Service) ExportCSV(now time.Time) ([]byte, error) {
	result, err := s.exportBreaker.Execute(func() (interface{}, error) {
		var buf bytes.Buffer
		if err := s.render(&buf, s.savedRecords(now)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}

// ExportFilename names the attachment produced at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("telescope_weather_data_%s.csv", now.Format(exportFileTimeLayout))
}

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, records []SavedRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.DateTime,
			r.Location,
			formatFloat(r.Temperature),
			strconv.Itoa(r.Humidity),
			formatFloat(r.WindSpeed),
			formatFloat(r.Pressure),
			strconv.Itoa(r.Visibility),
			strconv.Itoa(r.CloudCover),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
