package forecast

import (
	"context"
	"fmt"
	"time"

	"kma-forecast/internal/models"
	"kma-forecast/internal/repositories"
	"kma-forecast/pkg/kmagrid"
	"kma-forecast/pkg/logger"
)

// Service builds reports for the slot TargetOffset ahead of the current time.
type Service struct {
	repo     repositories.ForecastRepository
	location *time.Location
	now      func() time.Time
	l        *logger.Logger
}

func NewForecastService(repo repositories.ForecastRepository, location *time.Location, l *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		location: location,
		now:      time.Now,
		l:        l,
	}
}

// WithClock replaces the wall clock, mostly for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Window is the bulletin and target slot for the current time.
func (s *Service) Window() models.Window {
	return NewWindow(s.now().In(s.location))
}

// Report fetches the current bulletin for point and translates the records of the target slot.
// A report without fields is not an error; fetch failures are.
func (s *Service) Report(ctx context.Context, point kmagrid.Point, locationName string, locale Locale) (*models.Report, error) {
	window := s.Window()

	s.l.Info("starting forecast fetch", map[string]any{
		"repository":  s.repo.Name(),
		"bulletin":    window.Bulletin.String(),
		"target_date": window.TargetDate,
		"target_time": window.TargetTime,
		"grid":        point.String(),
	})

	items, err := s.repo.FetchItems(ctx, window.Bulletin, point)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bulletin %s for %s: %w", window.Bulletin, point, err)
	}

	report := BuildReport(window, items, locale)
	report.Location = locationName
	report.NX = point.NX
	report.NY = point.NY

	s.l.Info("completed forecast fetch", map[string]any{
		"items":  len(items),
		"fields": len(report.Fields),
	})

	return report, nil
}

// BuildReport keeps the records of the window's target slot and translates the reported categories.
// When a category occurs more than once the last record wins.
func BuildReport(window models.Window, items []models.Item, locale Locale) *models.Report {
	byCategory := make(map[models.Category]models.Field, len(models.DisplayOrder))
	for _, item := range models.FilterByTarget(items, window.TargetDate, window.TargetTime) {
		if field, ok := locale.Translate(item); ok {
			byCategory[item.Category] = field
		}
	}

	fields := make([]models.Field, 0, len(byCategory))
	for _, category := range models.DisplayOrder {
		if field, ok := byCategory[category]; ok {
			fields = append(fields, field)
		}
	}

	return &models.Report{
		Bulletin:   window.Bulletin,
		TargetDate: window.TargetDate,
		TargetTime: window.TargetTime,
		Fields:     fields,
	}
}
