package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"kma-forecast/internal/models"
	"kma-forecast/pkg/kmagrid"
)

// RateLimitedRepository keeps calls to the portal under its request quota.
type RateLimitedRepository struct {
	repo    ForecastRepository
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedRepository allows rps requests per second (fractional values allowed) with the given burst.
func NewRateLimitedRepository(repo ForecastRepository, rps float64, burst int) *RateLimitedRepository {
	return &RateLimitedRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", repo.Name()),
	}
}

func (r *RateLimitedRepository) Name() string {
	return r.name
}

func (r *RateLimitedRepository) FetchItems(ctx context.Context, bulletin models.Bulletin, point kmagrid.Point) ([]models.Item, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return r.repo.FetchItems(ctx, bulletin, point)
}

var _ ForecastRepository = (*RateLimitedRepository)(nil)
