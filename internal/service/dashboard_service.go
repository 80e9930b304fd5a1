package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"hotelier/internal/dto"
	"hotelier/internal/infra"
	"hotelier/internal/repository"

	"github.com/redis/go-redis/v9"
)

const dashboardCacheTTL = 5 * time.Minute

// DashboardService aggregates monthly occupancy and revenue metrics.
// Read-only; results are cached in Redis for the TTL above.
type DashboardService interface {
	Stats(ctx context.Context, month, year int) (*dto.DashboardResponse, error)
	GeneratePDF(ctx context.Context, month, year int) (string, error)
}

type dashboardService struct {
	repo        repository.DashboardRepository
	rooms       repository.RoomRepository
	rdb         *redis.Client // nil disables the cache (unit tests)
	storagePath string
}

func NewDashboardService(
	repo repository.DashboardRepository,
	rooms repository.RoomRepository,
	rdb *redis.Client,
	storagePath string,
) DashboardService {
	return &dashboardService{repo: repo, rooms: rooms, rdb: rdb, storagePath: storagePath}
}

func (s *dashboardService) Stats(ctx context.Context, month, year int) (*dto.DashboardResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:%04d-%02d", year, month)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	stats, err := s.repo.Stats(ctx, month, year)
	if err != nil {
		return nil, err
	}
	totalRooms, err := s.rooms.Count(ctx)
	if err != nil {
		return nil, err
	}

	occupancy := 0.0
	if totalRooms > 0 {
		occupancy = float64(stats.ReservedCount) / float64(totalRooms) * 100
	}

	resp := &dto.DashboardResponse{
		TotalRevenue: stats.TotalRevenue,
		OccupancyPct: math.Round(occupancy*100) / 100,
		AvgStayDays:  math.Round(stats.AvgStayDays*100) / 100,
		TotalClients: stats.DistinctClients,
		Month:        month,
		Year:         year,
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, dashboardCacheTTL).Err()
		}
	}

	return resp, nil
}

func (s *dashboardService) GeneratePDF(ctx context.Context, month, year int) (string, error) {
	stats, err := s.Stats(ctx, month, year)
	if err != nil {
		return "", err
	}
	return infra.GenerateDashboardPDF(stats, s.storagePath)
}
