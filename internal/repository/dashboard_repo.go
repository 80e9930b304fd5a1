package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStats are the raw monthly aggregates; percentages are derived
// in the service layer.
type DashboardStats struct {
	TotalRevenue    decimal.Decimal
	ReservedCount   int64
	AvgStayDays     float64
	DistinctClients int64
}

type DashboardRepository interface {
	// Stats aggregates reservations whose check-in falls in (month, year).
	Stats(ctx context.Context, month, year int) (*DashboardStats, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) Stats(ctx context.Context, month, year int) (*DashboardStats, error) {
	var row struct {
		TotalRevenue    decimal.Decimal
		ReservedCount   int64
		AvgStayDays     float64
		DistinctClients int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total), 0)                                   AS total_revenue,
			COUNT(*)                                                  AS reserved_count,
			COALESCE(AVG(check_out_date - check_in_date), 0)          AS avg_stay_days,
			COUNT(DISTINCT client_id)                                 AS distinct_clients
		FROM reservations
		WHERE EXTRACT(MONTH FROM check_in_date) = ?
		  AND EXTRACT(YEAR  FROM check_in_date) = ?`,
		month, year).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalRevenue:    row.TotalRevenue,
		ReservedCount:   row.ReservedCount,
		AvgStayDays:     row.AvgStayDays,
		DistinctClients: row.DistinctClients,
	}, nil
}
