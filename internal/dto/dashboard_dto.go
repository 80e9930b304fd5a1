package dto

import "github.com/shopspring/decimal"

// DashboardFilter selects the reporting period by reservation check-in.
type DashboardFilter struct {
	Month int `form:"month" validate:"omitempty,gte=1,lte=12"`
	Year  int `form:"year"  validate:"omitempty,gte=2000"`
}

type DashboardResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	OccupancyPct float64         `json:"occupancy_pct"`
	AvgStayDays  float64         `json:"avg_stay_days"`
	TotalClients int64           `json:"total_clients"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}
