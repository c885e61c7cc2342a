package weather

import (
	"io"
	"time"

	"github.com/sony/gobreaker"
)

// Options sets the lengths of the generated series.
type Options struct {
	ForecastDays    int
	HourlySlots     int
	HistoricalYears int
	SavedHoursBack  int
}

// DefaultOptions returns the series lengths served by default.
func DefaultOptions() Options {
	return Options{
		ForecastDays:    5,
		HourlySlots:     8,
		HistoricalYears: 5,
		SavedHoursBack:  10,
	}
}

// Service assembles simulator and scorer output into response payloads.
type Service struct {
	sim  *Simulator
	opts Options

	exportBreaker *gobreaker.CircuitBreaker
	render        func(w io.Writer, records []SavedRecord) error
}

// NewService creates a new Service.
func NewService(sim *Simulator, opts Options) *Service {
	return &Service{
		sim:           sim,
		opts:          opts,
		exportBreaker: newExportBreaker(),
		render:        WriteCSV,
	}
}

// Locations returns every known location profile in registry order.
func (s *Service) Locations() []LocationProfile {
	return s.sim.Registry().Profiles()
}

// Current samples and scores the current reading for locationKey.
func (s *Service) Current(locationKey string, now time.Time) (Reading, Suitability) {
	reading := s.sim.Sample(locationKey, now)
	return reading, Score(reading.Observation())
}

// Conditions builds the full conditions payload for locationKey at now.
// Forecast and hourly entries are scored with the current pressure, since
// neither series carries its own.
func (s *Service) Conditions(locationKey string, now time.Time) ConditionsPayload {
	reading, prediction := s.Current(locationKey, now)

	forecast := s.sim.ForecastDays(locationKey, now, s.opts.ForecastDays)
	dayPredictions := make([]DayPrediction, 0, len(forecast))
	for _, day := range forecast {
		dayPredictions = append(dayPredictions, DayPrediction{
			Date: day.Date,
			Suitability: Score(Observation{
				Temperature: (day.MinTemp + day.MaxTemp) / 2,
				Humidity:    day.Humidity,
				WindSpeed:   day.WindSpeed,
				Pressure:    reading.Pressure,
			}),
		})
	}

	hourly := s.sim.HourlySlots(locationKey, now, s.opts.HourlySlots)
	hourPredictions := make([]HourPrediction, 0, len(hourly))
	for _, slot := range hourly {
		hourPredictions = append(hourPredictions, HourPrediction{
			Time: slot.Time,
			Suitability: Score(Observation{
				Temperature: slot.Temperature,
				Humidity:    slot.Humidity,
				WindSpeed:   slot.WindSpeed,
				Pressure:    reading.Pressure,
			}),
		})
	}

	return ConditionsPayload{
		Weather:             reading,
		Prediction:          prediction,
		Forecast:            forecast,
		ForecastPredictions: dayPredictions,
		Hourly:              hourly,
		HourlyPredictions:   hourPredictions,
		Historical:          s.sim.HistoricalRecords(now, s.opts.HistoricalYears),
		SavedData:           s.savedRecords(now),
		Locations:           s.sim.Registry().Keys(),
		Timestamp:           now.Format(time.RFC3339),
	}
}

func (s *Service) savedRecords(now time.Time) []SavedRecord {
	return s.sim.SavedRecords(now, s.opts.SavedHoursBack, s.sim.Registry().Profiles())
}
