package repositories

import (
	"context"
	"net/http"

	"kma-forecast/config"
	"kma-forecast/internal/models"
	"kma-forecast/pkg/kmagrid"
	"kma-forecast/pkg/logger"
)

// ForecastRepository fetches the records of one bulletin for one grid cell.
type ForecastRepository interface {
	Name() string
	FetchItems(ctx context.Context, bulletin models.Bulletin, point kmagrid.Point) ([]models.Item, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitForecastRepository builds the portal client and wraps it with rate limiting and caching when configured.
func InitForecastRepository(cfg *config.Config, l *logger.Logger) (ForecastRepository, error) {
	httpClient := &http.Client{Timeout: cfg.KMA.Timeout}

	kma, err := NewKMARepository(cfg.KMA, l, httpClient)
	if err != nil {
		return nil, err
	}

	var repo ForecastRepository = kma

	if cfg.KMA.RateLimit.RPS > 0 {
		repo = NewRateLimitedRepository(repo, cfg.KMA.RateLimit.RPS, cfg.KMA.RateLimit.Burst)
	}

	if cfg.KMA.CacheTTL > 0 {
		repo = NewCachedRepository(repo, cfg.KMA.CacheTTL, l)
	}

	l.Debug("forecast repository ready", map[string]any{
		"repository": repo.Name(),
		"timeout":    cfg.KMA.Timeout.String(),
		"rows":       cfg.KMA.NumOfRows,
	})

	return repo, nil
}
