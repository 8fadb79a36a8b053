package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"kma-forecast/internal/models"
	"kma-forecast/internal/services/forecast"
	"kma-forecast/pkg/kmagrid"
)

// ForecastResponse represents the forecast of one grid cell at the target slot
type ForecastResponse struct {
	Location   string          `json:"location" example:"양주시"`
	NX         int             `json:"nx" example:"62"`
	NY         int             `json:"ny" example:"128"`
	BaseDate   string          `json:"base_date" example:"20250725"`
	BaseTime   string          `json:"base_time" example:"0500"`
	TargetDate string          `json:"target_date" example:"20250725"`
	TargetTime string          `json:"target_time" example:"0900"`
	Summary    string          `json:"summary" example:"양주시 09시 날씨 예보"`
	Available  bool            `json:"available" example:"true"`
	Message    string          `json:"message,omitempty" example:"해당 시간의 정보가 없습니다."`
	Fields     []FieldResponse `json:"fields"`
}

// FieldResponse represents one translated forecast value
type FieldResponse struct {
	Category string `json:"category" example:"SKY"`
	Label    string `json:"label" example:"하늘"`
	Value    string `json:"value" example:"맑음 ☀️"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"nx and ny must both be set"`
}

// GetForecast godoc
// @Summary Get short-term forecast
// @Description Returns the short-term forecast two hours ahead for a KMA grid cell, addressed by nx/ny or by lat/lon.
// @Tags Forecast
// @Produce json
// @Param nx query integer false "Grid x (1-149)" example(62)
// @Param ny query integer false "Grid y (1-253)" example(128)
// @Param lat query number false "Latitude, used with lon instead of nx/ny" example(37.5665)
// @Param lon query number false "Longitude, used with lat instead of nx/ny" example(126.978)
// @Param location query string false "Display name of the location"
// @Param locale query string false "Language of labels and values" Enums(ko, en)
// @Success 200 {object} ForecastResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Forecast portal failure"
// @Router /forecast [get]
func (r *routes) handleForecastCall(c *fiber.Ctx) error {
	point, location, err := r.resolvePoint(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	locale := r.defaults.Locale
	if name := c.Query("locale"); name != "" {
		if locale, err = forecast.LookupLocale(name); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
		}
	}

	report, err := r.service.Report(c.UserContext(), point, location, locale)
	if err != nil {
		r.l.Error(err, map[string]any{
			"nx": point.NX,
			"ny": point.NY,
		})

		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Failed to fetch forecast data",
		})
	}

	return c.JSON(toResponse(report, locale))
}

// resolvePoint prefers nx/ny, then lat/lon, then the configured cell.
func (r *routes) resolvePoint(c *fiber.Ctx) (kmagrid.Point, string, error) {
	nx, ny := c.Query("nx"), c.Query("ny")
	lat, lon := c.Query("lat"), c.Query("lon")

	var point kmagrid.Point

	switch {
	case nx != "" || ny != "":
		if nx == "" || ny == "" {
			return point, "", errors.New("nx and ny must both be set")
		}
		var err error
		if point.NX, err = strconv.Atoi(nx); err != nil {
			return point, "", errors.New("invalid nx format")
		}
		if point.NY, err = strconv.Atoi(ny); err != nil {
			return point, "", errors.New("invalid ny format")
		}

	case lat != "" || lon != "":
		if lat == "" || lon == "" {
			return point, "", errors.New("lat and lon must both be set")
		}
		latFloat, err := strconv.ParseFloat(lat, 64)
		if err != nil || latFloat < -90 || latFloat > 90 {
			return point, "", errors.New("latitude must be a number between -90 and 90")
		}
		lonFloat, err := strconv.ParseFloat(lon, 64)
		if err != nil || lonFloat < -180 || lonFloat > 180 {
			return point, "", errors.New("longitude must be a number between -180 and 180")
		}
		point = kmagrid.ToGrid(latFloat, lonFloat)

	default:
		return r.defaults.Point, c.Query("location", r.defaults.Location), nil
	}

	if !point.Valid() {
		return point, "", errors.New("location is outside the forecast grid")
	}

	return point, c.Query("location", point.String()), nil
}

func toResponse(report *models.Report, locale forecast.Locale) ForecastResponse {
	response := ForecastResponse{
		Location:   report.Location,
		NX:         report.NX,
		NY:         report.NY,
		BaseDate:   report.Bulletin.BaseDate,
		BaseTime:   report.Bulletin.BaseTime,
		TargetDate: report.TargetDate,
		TargetTime: report.TargetTime,
		Summary:    forecast.Headline(report, locale),
		Available:  report.Available(),
		Fields:     make([]FieldResponse, 0, len(report.Fields)),
	}

	if !response.Available {
		response.Message = locale.NoInformation
	}

	for _, field := range report.Fields {
		response.Fields = append(response.Fields, FieldResponse{
			Category: string(field.Category),
			Label:    field.Label,
			Value:    field.Value,
		})
	}

	return response
}
