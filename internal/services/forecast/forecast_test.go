package forecast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kma-forecast/internal/models"
	"kma-forecast/internal/services/forecast"
	"kma-forecast/pkg/kmagrid"
	"kma-forecast/pkg/logger"
)

var kst = time.FixedZone("KST", 9*3600)

// MockRepository implements ForecastRepository for testing
type MockRepository struct {
	items     []models.Item
	err       error
	requested []models.Bulletin
}

func (m *MockRepository) Name() string {
	return "mock"
}

func (m *MockRepository) FetchItems(ctx context.Context, bulletin models.Bulletin, point kmagrid.Point) ([]models.Item, error) {
	m.requested = append(m.requested, bulletin)
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func record(category models.Category, date, hour, value string) models.Item {
	return models.Item{
		BaseDate:  "20250725",
		BaseTime:  "0500",
		Category:  category,
		FcstDate:  date,
		FcstTime:  hour,
		FcstValue: value,
		NX:        62,
		NY:        128,
	}
}

func newService(repo *MockRepository, now time.Time) *forecast.Service {
	return forecast.NewForecastService(repo, kst, logger.NewZapLogger("test-app")).
		WithClock(func() time.Time { return now })
}

func TestService_Report(t *testing.T) {
	repo := &MockRepository{items: []models.Item{
		record(models.CategoryTemperature, "20250725", "0800", "22"),
		record(models.CategoryTemperature, "20250725", "0900", "24"),
		record("UUU", "20250725", "0900", "-0.5"),
		record(models.CategorySky, "20250725", "0900", "3"),
		record(models.CategoryPrecipitation, "20250725", "0900", "1"),
		record(models.CategoryProbability, "20250725", "0900", "60"),
		record("REH", "20250725", "0900", "85"),
		record(models.CategoryTemperature, "20250725", "1000", "25"),
	}}

	service := newService(repo, time.Date(2025, 7, 25, 7, 15, 0, 0, kst))

	report, err := service.Report(context.Background(), kmagrid.Point{NX: 62, NY: 128}, "양주시", forecast.Korean)
	require.NoError(t, err)

	require.Len(t, repo.requested, 1)
	assert.Equal(t, models.Bulletin{BaseDate: "20250725", BaseTime: "0500"}, repo.requested[0])

	assert.Equal(t, "양주시", report.Location)
	assert.Equal(t, 62, report.NX)
	assert.Equal(t, 128, report.NY)
	assert.Equal(t, "20250725", report.TargetDate)
	assert.Equal(t, "0900", report.TargetTime)
	assert.True(t, report.Available())
	assert.Equal(t, []models.Field{
		{Category: models.CategoryTemperature, Label: "기온", Value: "24°C"},
		{Category: models.CategorySky, Label: "하늘", Value: "구름많음 🌥️"},
		{Category: models.CategoryPrecipitation, Label: "강수", Value: "비 💧"},
		{Category: models.CategoryProbability, Label: "강수확률", Value: "60%"},
	}, report.Fields)
}

func TestService_Report_ConvertsClockToForecastZone(t *testing.T) {
	repo := &MockRepository{}

	// 16:30 UTC is 01:30 KST the next day, before the first release
	service := newService(repo, time.Date(2025, 7, 24, 16, 30, 0, 0, time.UTC))

	report, err := service.Report(context.Background(), kmagrid.Point{NX: 62, NY: 128}, "양주시", forecast.Korean)
	require.NoError(t, err)

	assert.Equal(t, models.Bulletin{BaseDate: "20250724", BaseTime: "2300"}, repo.requested[0])
	assert.Equal(t, "20250725", report.TargetDate)
	assert.Equal(t, "0300", report.TargetTime)
	assert.False(t, report.Available())
}

func TestService_Report_RepositoryError(t *testing.T) {
	repo := &MockRepository{err: errors.New("portal down")}
	service := newService(repo, time.Date(2025, 7, 25, 7, 15, 0, 0, kst))

	report, err := service.Report(context.Background(), kmagrid.Point{NX: 62, NY: 128}, "양주시", forecast.Korean)
	assert.Nil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "portal down")
	assert.Contains(t, err.Error(), "20250725 0500")
}

func TestBuildReport_OnlyTargetRecords(t *testing.T) {
	window := models.Window{
		Bulletin:   models.Bulletin{BaseDate: "20250725", BaseTime: "2300"},
		TargetDate: "20250726",
		TargetTime: "0100",
	}
	items := []models.Item{
		record(models.CategoryTemperature, "20250725", "0100", "30"),
		record(models.CategoryTemperature, "20250726", "0100", "21"),
		record(models.CategoryTemperature, "20250726", "0200", "20"),
	}

	report := forecast.BuildReport(window, items, forecast.Korean)

	require.Len(t, report.Fields, 1)
	assert.Equal(t, "21°C", report.Fields[0].Value)
}

func TestBuildReport_NoPrecipitationFieldWhenNone(t *testing.T) {
	window := models.Window{TargetDate: "20250725", TargetTime: "0900"}
	items := []models.Item{
		record(models.CategorySky, "20250725", "0900", "1"),
		record(models.CategoryPrecipitation, "20250725", "0900", "0"),
	}

	report := forecast.BuildReport(window, items, forecast.English)

	assert.Equal(t, []models.Field{
		{Category: models.CategorySky, Label: "Sky", Value: "Clear ☀️"},
	}, report.Fields)
}

func TestBuildReport_LastDuplicateWins(t *testing.T) {
	window := models.Window{TargetDate: "20250725", TargetTime: "0900"}
	items := []models.Item{
		record(models.CategoryProbability, "20250725", "0900", "10"),
		record(models.CategoryProbability, "20250725", "0900", "20"),
	}

	report := forecast.BuildReport(window, items, forecast.Korean)

	require.Len(t, report.Fields, 1)
	assert.Equal(t, "20%", report.Fields[0].Value)
}

func TestBuildReport_NoMatch(t *testing.T) {
	window := models.Window{TargetDate: "20250725", TargetTime: "1500"}
	items := []models.Item{record(models.CategoryTemperature, "20250725", "0900", "24")}

	report := forecast.BuildReport(window, items, forecast.Korean)

	assert.False(t, report.Available())
	assert.Empty(t, report.Fields)
}
