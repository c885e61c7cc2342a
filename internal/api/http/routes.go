package httpapi

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/telescope-weather/internal/logger"
	"github.com/i474232898/telescope-weather/internal/weather"
	"github.com/i474232898/telescope-weather/web"
)

//go:generate mockgen -source=routes.go -destination=mock/mock.go ConditionsService

// ConditionsService provides the payloads served by the API.
type ConditionsService interface {
	Conditions(locationKey string, now time.Time) weather.ConditionsPayload
	ExportCSV(now time.Time) ([]byte, error)
	Locations() []weather.LocationProfile
}

// Clock returns the time a request is served at.
type Clock func() time.Time

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service ConditionsService, now Clock) {
	if now == nil {
		now = time.Now
	}

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(web.IndexHTML)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": appName,
		})
	})

	api := app.Group("/api")

	// Unknown locations fall back to the default site, never 404.
	api.Get("/telescope-conditions/:location?", func(c *fiber.Ctx) error {
		return c.JSON(service.Conditions(c.Params("location"), now()))
	})

	api.Get("/locations", func(c *fiber.Ctx) error {
		return c.JSON(service.Locations())
	})

	app.Get("/export/weather-data", func(c *fiber.Ctx) error {
		ts := now()

		body, err := service.ExportCSV(ts)
		if err != nil {
			logger.Error(fmt.Errorf("failed to export weather data: %w", err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Export failed: " + err.Error(),
			})
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, "attachment; filename="+weather.ExportFilename(ts))
		return c.Send(body)
	})
}
