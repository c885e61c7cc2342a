package weather

import (
	"time"
)

const (
	// MaxSavedRecords caps the synthetic saved-data series.
	MaxSavedRecords = 20

	dateLayout     = "2006-01-02"
	hourLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04:05"

	forecastMinSpread = 3
	forecastMaxSpread = 4
)

// longRunBaseline centres the historical series. It is not tied to a location.
var longRunBaseline = Baseline{
	TemperatureC: 15.0,
	HumidityPct:  62,
	WindSpeed:    2.0,
	PressureHpa:  966.0,
}

// ForecastDays returns one entry per calendar day after ref, count days in total.
func (s *Simulator) ForecastDays(locationKey string, ref time.Time, count int) []ForecastDay {
	b := s.registry.Lookup(locationKey).Baseline

	days := make([]ForecastDay, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		noise := uniform(s.rnd, -3, 3)
		days = append(days, ForecastDay{
			Date:       ref.AddDate(0, 0, i).Format(dateLayout),
			MinTemp:    round1(b.TemperatureC + noise - forecastMinSpread),
			MaxTemp:    round1(b.TemperatureC + noise + forecastMaxSpread),
			Humidity:   noisyHumidity(s.rnd, b.HumidityPct, 10),
			WindSpeed:  nonNegative(round1(b.WindSpeed + uniform(s.rnd, -0.5, 0.5))),
			Conditions: choice(s.rnd, skyConditions),
			CloudCover: intBetween(s.rnd, 0, 30),
		})
	}
	return days
}

// HourlySlots returns count entries for the hours following ref. Each is a
// full Sample at that hour, perturbed further.
func (s *Simulator) HourlySlots(locationKey string, ref time.Time, count int) []HourlySlot {
	p := s.registry.Lookup(locationKey)

	slots := make([]HourlySlot, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		at := ref.Add(time.Duration(i) * time.Hour)
		r := s.sampleProfile(p, at)
		slots = append(slots, HourlySlot{
			Time:        at.Format(hourLayout),
			DateTime:    at.Format(time.RFC3339),
			Temperature: round1(r.Temperature + uniform(s.rnd, -1, 1)),
			Humidity:    clampInt(r.Humidity+intBetween(s.rnd, -5, 5), minHumidity, maxHumidity),
			WindSpeed:   nonNegative(round1(r.WindSpeed + uniform(s.rnd, -0.3, 0.3))),
			CloudCover:  clampInt(r.CloudCover+intBetween(s.rnd, -10, 10), 0, 100),
			Conditions:  r.WeatherText,
		})
	}
	return slots
}

// HistoricalRecords returns count yearly samples, stepping back 365 days each.
func (s *Simulator) HistoricalRecords(ref time.Time, count int) []HistoricalRecord {
	b := longRunBaseline

	records := make([]HistoricalRecord, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		at := ref.AddDate(0, 0, -365*i)
		records = append(records, HistoricalRecord{
			Date:        at.Format(dateLayout),
			Year:        at.Year(),
			Temperature: round1(b.TemperatureC + uniform(s.rnd, -3, 3)),
			Humidity:    noisyHumidity(s.rnd, b.HumidityPct, 10),
			WindSpeed:   nonNegative(round1(b.WindSpeed + uniform(s.rnd, -0.5, 0.5))),
			Pressure:    round1(b.PressureHpa + uniform(s.rnd, -3, 3)),
			CloudCover:  intBetween(s.rnd, 0, 60),
		})
	}
	return records
}

// SavedRecords crosses the last hoursBack whole hours (newest first) with
// locations in the given order, stopping at MaxSavedRecords.
func (s *Simulator) SavedRecords(ref time.Time, hoursBack int, locations []LocationProfile) []SavedRecord {
	top := time.Date(ref.Year(), ref.Month(), ref.Day(), ref.Hour(), 0, 0, 0, ref.Location())

	records := make([]SavedRecord, 0, MaxSavedRecords)
	for h := 0; h < hoursBack; h++ {
		at := top.Add(-time.Duration(h) * time.Hour)
		for _, p := range locations {
			if len(records) == MaxSavedRecords {
				return records
			}
			r := s.sampleProfile(p, at)
			records = append(records, SavedRecord{
				DateTime:    at.Format(dateTimeLayout),
				Location:    p.DisplayName,
				Temperature: r.Temperature,
				Humidity:    r.Humidity,
				WindSpeed:   r.WindSpeed,
				Pressure:    r.Pressure,
				Visibility:  r.Visibility,
				CloudCover:  r.CloudCover,
			})
		}
	}
	return records
}
