package console

import (
	"fmt"
	"time"

	"cafe_pos_backend/internal/models"

	"cafe_pos_backend/pkg/utils"
)

func (c *Console) bossDashboard() {
	for {
		c.clear()
		c.drawHeader("EXECUTIVE DASHBOARD: BOSS")

		snapshot, err := c.reports.Snapshot()
		if err != nil {
			utils.LogError(err, "Failed to build financial snapshot")
			snapshot = &models.FinancialSnapshot{}
		}

		fmt.Fprintf(c.out, "\n--- FINANCIAL SNAPSHOT as of %s ---\n", time.Now().Format("2006-01-02"))
		c.drawWidget("TOTAL REVENUE", c.glyph+utils.FormatMoney(snapshot.TotalRevenue))
		c.drawWidget("EXPENSES", c.glyph+utils.FormatMoney(snapshot.TotalExpenses))
		c.drawWidget("STAFF SALARY", c.glyph+utils.FormatMoney(snapshot.TotalStaffSalary))
		c.drawWidget("NET PROFIT", c.glyph+utils.FormatMoney(snapshot.NetProfit))

		if alerts, err := c.alerts.Lines(); err == nil && len(alerts) > 0 {
			fmt.Fprintln(c.out, "\n--- URGENT ALERTS ---")
			for _, alert := range alerts {
				c.drawAlert(alert)
			}
		}

		fmt.Fprintln(c.out, "\n--- MANAGEMENT FUNCTIONS ---")
		fmt.Fprintln(c.out, "1. Manage Menu (Prices & Items)")
		fmt.Fprintln(c.out, "2. Manage Inventory (View/Add/Restock)")
		fmt.Fprintln(c.out, "3. View Sales Report")
		fmt.Fprintln(c.out, "4. Clear Alerts")
		fmt.Fprintln(c.out, "5. Register New Staff")
		fmt.Fprintln(c.out, "6. Remove Staff")
		fmt.Fprintln(c.out, "7. Logout")

		switch c.prompt("\nSelect Function: ") {
		case "1":
			c.menuManagement()
		case "2":
			c.inventoryManagement()
		case "3":
			c.salesReportMenu()
		case "4":
			if err := c.alerts.Clear(); err != nil {
				utils.LogError(err, "Failed to clear alerts")
			} else {
				fmt.Fprintln(c.out, "Cleared.")
			}
			c.pause()
		case "5":
			c.registerStaff()
		case "6":
			c.removeStaff()
		case "7":
			return
		default:
			fmt.Fprintln(c.out, "Invalid selection.")
			c.pause()
		}
	}
}

func (c *Console) salesReportMenu() {
	for {
		c.clear()
		fmt.Fprintln(c.out, "=================================")
		fmt.Fprintln(c.out, "        SALES REPORT MENU")
		fmt.Fprintln(c.out, "=================================")
		fmt.Fprintln(c.out, "1) Weekly Sales Report")
		fmt.Fprintln(c.out, "2) Monthly Sales Report")
		fmt.Fprintln(c.out, "3) Yearly Sales Report")
		fmt.Fprintln(c.out, "4) Back")

		var period models.ReportPeriod
		switch c.prompt("Choose: ") {
		case "1":
			period = models.PeriodWeekly
		case "2":
			period = models.PeriodMonthly
		case "3":
			period = models.PeriodYearly
		case "4":
			return
		default:
			fmt.Fprintln(c.out, "Invalid option...")
			c.pause()
			continue
		}

		report, rendered, err := c.reports.SalesReport(period)
		if err != nil {
			utils.LogError(err, "Failed to generate sales report")
			fmt.Fprintln(c.out, "Could not generate the report.")
			c.pause()
			continue
		}
		c.clear()
		if len(report.Rows) == 0 {
			fmt.Fprintln(c.out, "No sales found for the selected period.")
		} else {
			fmt.Fprint(c.out, rendered)
		}
		c.pause()
	}
}

func (c *Console) registerStaff() {
	c.clear()
	c.drawHeader("NEW ACCOUNT REGISTRATION")

	role := c.prompt("Role (boss/owner/cashier/barista/staff): ")
	username := c.prompt("Username: ")
	password := c.promptPassword("Password: ")

	salary := 0.0
	if role != "boss" && role != "owner" {
		if input, ok := c.promptFloat("Enter salary for this staff (numeric, e.g. 1500): "); ok {
			salary = input
		}
	}

	if err := c.auth.Register(role, username, password, salary); err != nil {
		fmt.Fprintf(c.out, "Registration failed: %v\n", err)
	} else {
		fmt.Fprintln(c.out, "Account Created!")
	}
	c.pause()
}

func (c *Console) removeStaff() {
	c.clear()
	c.drawHeader("REMOVE STAFF")

	staff := c.auth.StaffAccounts()
	if len(staff) == 0 {
		fmt.Fprintln(c.out, "No staff found to remove.")
		c.pause()
		return
	}

	fmt.Fprintln(c.out, "Staff Accounts:")
	for i, acc := range staff {
		fmt.Fprintf(c.out, "%d. %s (%s) - Salary: %s%s\n", i+1, acc.Username, acc.Role, c.glyph, utils.FormatMoney(acc.Salary))
	}

	input := c.prompt("\nSelect staff number to remove: ")
	choice, ok := parseChoice(input, len(staff))
	if !ok {
		fmt.Fprintln(c.out, "Invalid selection.")
		c.pause()
		return
	}

	username := staff[choice-1].Username
	removed, err := c.auth.RemoveStaff(username)
	if err != nil {
		utils.LogError(err, "Failed to remove staff")
		fmt.Fprintln(c.out, "Could not remove the account.")
	} else if removed {
		fmt.Fprintf(c.out, "Staff '%s' removed successfully.\n", username)
	} else {
		fmt.Fprintln(c.out, "Account not found.")
	}
	c.pause()
}
