package models

type DashboardStats struct {
	MonthlyRevenue float64 `json:"monthly_revenue"`
	RevenueTarget  float64 `json:"revenue_target"`
	ActiveCustomer int64   `json:"active_customers"`
	GrowthRate     float64 `json:"growth_rate"`
	AIEfficiency   float64 `json:"ai_efficiency"`
}
