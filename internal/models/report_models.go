package models

import "time"

// ReportPeriod selects the sales-report date window.
type ReportPeriod string

const (
	PeriodWeekly  ReportPeriod = "weekly"  // current Monday-Sunday week
	PeriodMonthly ReportPeriod = "monthly" // current calendar month
	PeriodYearly  ReportPeriod = "yearly"  // current calendar year
)

// SalesReportRow is one parsed sale line inside the selected period.
type SalesReportRow struct {
	Date     time.Time `json:"date"`
	ItemName string    `json:"item_name"`
	Quantity int       `json:"quantity"`
	Total    float64   `json:"total"`
}

// SalesReport is the aggregated period report rendered for display and
// persisted to the per-period report file.
type SalesReport struct {
	Period          ReportPeriod     `json:"period"`
	Rows            []SalesReportRow `json:"rows"`
	TotalSales      float64          `json:"total_sales"`
	BestSellingItem string           `json:"best_selling_item"`
	BestSellingQty  int              `json:"best_selling_qty"`
}

// FinancialSnapshot holds the boss-dashboard aggregate totals.
type FinancialSnapshot struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalExpenses    float64 `json:"total_expenses"`
	TotalStaffSalary float64 `json:"total_staff_salary"`
	NetProfit        float64 `json:"net_profit"`
}
