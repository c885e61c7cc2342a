package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/telescope-weather/internal/logger"
	"github.com/i474232898/telescope-weather/internal/weather"
)

// Sampler is the slice of weather.Service the monitor needs.
type Sampler interface {
	Locations() []weather.LocationProfile
	Current(locationKey string, now time.Time) (weather.Reading, weather.Suitability)
}

// Scheduler periodically samples and logs viewing conditions for every location.
// It keeps no state between runs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sampler   Sampler
	interval  time.Duration
	now       func() time.Time
}

// New creates a new Scheduler.
func New(sampler Sampler, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		sampler:   sampler,
		interval:  interval,
		now:       time.Now,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// A non-positive interval leaves the monitor disabled.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		logger.Info("scheduler: monitor interval not set; conditions monitor disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() { s.RunOnce() })
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce samples every location once and logs the result.
// It returns the number of locations sampled.
func (s *Scheduler) RunOnce() int {
	now := s.now()
	locations := s.sampler.Locations()

	for _, loc := range locations {
		reading, suit := s.sampler.Current(loc.Key, now)
		logger.WithFields(logrus.Fields{
			"location":       reading.Location,
			"temperature":    reading.Temperature,
			"humidity":       reading.Humidity,
			"score":          suit.Score,
			"recommendation": suit.Recommendation,
		}).Info("scheduler: sampled viewing conditions")
	}

	return len(locations)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
