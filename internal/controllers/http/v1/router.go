package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "kma-forecast/docs"
	"kma-forecast/internal/services/forecast"
	"kma-forecast/pkg/kmagrid"
	"kma-forecast/pkg/logger"
)

// Defaults apply when a request does not name a grid cell or locale.
type Defaults struct {
	Point    kmagrid.Point
	Location string
	Locale   forecast.Locale
}

type routes struct {
	service  *forecast.Service
	defaults Defaults
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	forecastService *forecast.Service,
	defaults Defaults,
	l *logger.Logger,
) {
	r := &routes{
		service:  forecastService,
		defaults: defaults,
		l:        l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/forecast", r.handleForecastCall)
}
