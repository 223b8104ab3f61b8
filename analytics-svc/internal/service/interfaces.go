package service

import (
	"context"

	"food-ordering/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopToday(ctx context.Context) ([]domain.FoodAnalytics, error)
	TopAllTime(ctx context.Context) ([]domain.FoodAnalytics, error)
	RatingDistribution(ctx context.Context) (map[string]int64, error)
	OrderCounters(ctx context.Context) (domain.OrderCounters, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
