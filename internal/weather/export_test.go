package weather

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func TestExportCSVHeaderAndRows(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC)

	body, err := svc.ExportCSV(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	if lines[0] != "datetime,location,temperature,humidity,wind_speed,pressure,visibility,cloud_cover" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if len(lines) != 1+MaxSavedRecords {
		t.Fatalf("expected %d lines, got %d", 1+MaxSavedRecords, len(lines))
	}
	if !strings.HasPrefix(lines[1], "2026-10-14 10:00:00,Beluwakhan,") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	for i, l := range lines[1:] {
		if n := len(strings.Split(l, ",")); n != len(CSVHeader) {
			t.Fatalf("row %d: expected %d columns, got %d", i, len(CSVHeader), n)
		}
	}
}

func TestExportCSVIsByteStable(t *testing.T) {
	now := time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC)

	a, err := newTestService().ExportCSV(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := newTestService().ExportCSV(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("expected identical exports for identical inputs")
	}
}

func TestWriteCSVFormatsValues(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []SavedRecord{{
		DateTime:    "2026-10-14 10:00:00",
		Location:    "Delhi",
		Temperature: 24.5,
		Humidity:    70,
		WindSpeed:   3,
		Pressure:    1012.1,
		Visibility:  12,
		CloudCover:  5,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "datetime,location,temperature,humidity,wind_speed,pressure,visibility,cloud_cover\n" +
		"2026-10-14 10:00:00,Delhi,24.5,70,3,1012.1,12,5\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s", buf.String())
	}
}

func TestExportBreakerOpensAfterRepeatedFailures(t *testing.T) {
	svc := newTestService()
	errRender := errors.New("disk on fire")
	svc.render = func(io.Writer, []SavedRecord) error { return errRender }

	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := svc.ExportCSV(now); !errors.Is(err, errRender) {
			t.Fatalf("attempt %d: expected render error, got %v", i, err)
		}
	}

	if _, err := svc.ExportCSV(now); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 5, 7, 0, time.UTC)
	if got := ExportFilename(now); got != "telescope_weather_data_20261014_090507.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}
