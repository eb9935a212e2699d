package services

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"
	"cafe_pos_backend/internal/storage"

	"cafe_pos_backend/pkg/utils"
)

// --- ReportService Interface ---
//
// ReportService is the read-only consumer of the sale ledger and expense
// log. It never mutates them; it scans their persisted text, buckets by
// date window, and renders/persists period reports.
type ReportService interface {
	// SalesReport filters the ledger to the period, aggregates totals and
	// the best seller, persists the rendered report to the per-period file,
	// and returns both the data and the rendered text.
	SalesReport(period models.ReportPeriod) (*models.SalesReport, string, error)
	// Snapshot aggregates revenue, expenses, staff salary and net profit
	// for the dashboard.
	Snapshot() (*models.FinancialSnapshot, error)
}

// --- reportService Implementation ---
type reportService struct {
	saleRepo    repositories.SaleRepository
	expenseRepo repositories.ExpenseRepository
	auth        AuthService
	glyph       string
	dataDir     string
	now         func() time.Time
}

// NewReportService creates a new instance of ReportService.
func NewReportService(saleRepo repositories.SaleRepository, expenseRepo repositories.ExpenseRepository, auth AuthService, glyph, dataDir string) ReportService {
	return &reportService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		auth:        auth,
		glyph:       glyph,
		dataDir:     dataDir,
		now:         time.Now,
	}
}

// inPeriod reports whether t falls inside the period window containing now.
// Weekly windows run Monday through Sunday.
func inPeriod(t, now time.Time, period models.ReportPeriod) bool {
	switch period {
	case models.PeriodWeekly:
		diff := (int(now.Weekday()) - int(time.Monday) + 7) % 7
		weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -diff)
		weekEnd := weekStart.AddDate(0, 0, 7)
		return !t.Before(weekStart) && t.Before(weekEnd)
	case models.PeriodMonthly:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case models.PeriodYearly:
		return t.Year() == now.Year()
	default:
		return false
	}
}

func (s *reportService) SalesReport(period models.ReportPeriod) (*models.SalesReport, string, error) {
	lines, err := s.saleRepo.Lines()
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan sale ledger: %w", err)
	}

	now := s.now()
	report := &models.SalesReport{Period: period}
	itemCount := map[string]int{}

	for _, line := range lines {
		sale, ok := repositories.ParseSaleLine(line, s.glyph)
		if !ok {
			// Unparseable lines are skipped; the report is best-effort.
			continue
		}
		if !inPeriod(sale.Date, now, period) {
			continue
		}
		report.Rows = append(report.Rows, models.SalesReportRow{
			Date:     sale.Date,
			ItemName: sale.ItemName,
			Quantity: sale.Quantity,
			Total:    sale.Total,
		})
		report.TotalSales += sale.Total
		itemCount[sale.ItemName] += sale.Quantity
	}

	names := make([]string, 0, len(itemCount))
	for name := range itemCount {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if itemCount[name] > report.BestSellingQty {
			report.BestSellingItem = name
			report.BestSellingQty = itemCount[name]
		}
	}

	rendered := s.renderReport(report, now)
	if len(report.Rows) > 0 {
		// Persisted reports are full snapshots, not appends.
		if err := storage.WriteText(filepath.Join(s.dataDir, reportFileName(period)), rendered); err != nil {
			utils.LogError(err, "Failed to persist period report")
		}
	}
	return report, rendered, nil
}

func reportFileName(period models.ReportPeriod) string {
	switch period {
	case models.PeriodWeekly:
		return "weekly_report.txt"
	case models.PeriodMonthly:
		return "monthly_report.txt"
	default:
		return "yearly_report.txt"
	}
}

// renderReport builds the tabulated period report text.
func (s *reportService) renderReport(report *models.SalesReport, now time.Time) string {
	itemWidth := 4
	for _, row := range report.Rows {
		if len(row.ItemName) > itemWidth {
			itemWidth = len(row.ItemName)
		}
	}

	header := fmt.Sprintf("| DATE       | TIME     | %-*s | QTY |", itemWidth, "ITEM")
	separator := strings.Repeat("-", len(header))

	var table strings.Builder
	table.WriteString(separator + "\n")
	table.WriteString(header + "\n")
	table.WriteString(separator + "\n")
	for _, row := range report.Rows {
		fmt.Fprintf(&table, "| %-10s | %-8s | %-*s | %-3d |\n",
			row.Date.Format("01/02/2006"), row.Date.Format("03:04 PM"), itemWidth, row.ItemName, row.Quantity)
	}
	table.WriteString(separator + "\n")
	fmt.Fprintf(&table, "TOTAL SALES: %s%s\n", s.glyph, utils.FormatMoney(report.TotalSales))
	best := report.BestSellingItem
	if best == "" {
		best = "N/A"
	}
	fmt.Fprintf(&table, "BEST-SELLING: %s (%d)\n", best, report.BestSellingQty)
	table.WriteString(separator + "\n")

	var periodHeader string
	switch report.Period {
	case models.PeriodWeekly:
		periodHeader = "WEEKLY SALES REPORT"
	case models.PeriodMonthly:
		periodHeader = "MONTH: " + now.Format("January")
	default:
		periodHeader = "YEAR: " + now.Format("2006")
	}

	return fmt.Sprintf(`========================================
              SALES REPORT
========================================
%s
----------------------------------------
%s
========================================
`, periodHeader, table.String())
}

// Snapshot totals are glyph-scans over the persisted text; lines without a
// parseable amount are ignored.
func (s *reportService) Snapshot() (*models.FinancialSnapshot, error) {
	lines, err := s.saleRepo.Lines()
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale ledger: %w", err)
	}

	revenue := 0.0
	for _, line := range lines {
		idx := strings.Index(line, s.glyph)
		if idx < 0 {
			continue
		}
		amount, ok := utils.LeadingAmount(strings.TrimSpace(line[idx+len(s.glyph):]))
		if !ok {
			continue
		}
		revenue += amount
	}

	expenses, err := s.expenseRepo.Total()
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	salary := s.auth.TotalStaffSalary()
	return &models.FinancialSnapshot{
		TotalRevenue:     revenue,
		TotalExpenses:    expenses,
		TotalStaffSalary: salary,
		NetProfit:        revenue - (expenses + salary),
	}, nil
}
