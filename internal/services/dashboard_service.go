package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"claims-service/internal/database/redis"
	"claims-service/internal/models"
	"claims-service/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService aggregates claim volume statistics, with a short-lived
// Redis cache in front of the database. A nil cache client is valid and
// every call hits the database directly.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
	cache         *redis.Client
}

func NewDashboardService(dashboardRepo *repository.DashboardRepository, cache *redis.Client) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		cache:         cache,
	}
}

func (s *DashboardService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	volume, err := s.dashboardRepo.GetClaimVolumeStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		ClaimVolumeStats:     *volume,
		AutoAdjudicationRate: autoAdjudicationRate(volume),
	}

	s.toCache(ctx, stats)
	return stats, nil
}

// InvalidateCache drops the cached stats so the next read reflects the
// latest claim. Called after every submission.
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.GetClient().Del(ctx, dashboardCacheKey).Err(); err != nil {
		slog.Warn("failed to invalidate dashboard cache", "error", err)
	}
}

func (s *DashboardService) fromCache(ctx context.Context) *models.DashboardStats {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.GetClient().Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		slog.Warn("failed to decode cached dashboard stats", "error", err)
		return nil
	}
	return &stats
}

func (s *DashboardService) toCache(ctx context.Context, stats *models.DashboardStats) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.GetClient().Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
		slog.Warn("failed to cache dashboard stats", "error", err)
	}
}

// autoAdjudicationRate is the share of claims decided without a human, as a
// percentage rounded to one decimal place.
func autoAdjudicationRate(volume *models.ClaimVolumeStats) float64 {
	if volume.TotalClaims == 0 {
		return 0
	}
	auto := float64(volume.TotalClaims-volume.ManualReview) / float64(volume.TotalClaims) * 100
	return math.Round(auto*10) / 10
}
