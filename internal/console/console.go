// Package console is the interactive front end: role-based login prompts,
// management screens, and receipt display. It drives the services' exported
// methods and holds no ledger logic of its own.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cafe_pos_backend/internal/repositories"
	"cafe_pos_backend/internal/services"
)

// Console wires the screens to the services. One instance runs the whole
// interactive session.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	glyph string

	auth      services.AuthService
	inventory services.InventoryService
	menu      services.MenuService
	sales     services.SaleService
	reports   services.ReportService
	alerts    repositories.AlertRepository
}

// New creates the console front end.
func New(glyph string, auth services.AuthService, inventory services.InventoryService, menu services.MenuService, sales services.SaleService, reports services.ReportService, alerts repositories.AlertRepository) *Console {
	return &Console{
		in:        newReader(),
		out:       os.Stdout,
		glyph:     glyph,
		auth:      auth,
		inventory: inventory,
		menu:      menu,
		sales:     sales,
		reports:   reports,
		alerts:    alerts,
	}
}

// Run blocks until the operator shuts the system down.
func (c *Console) Run() {
	if !c.adminUnlock() {
		return
	}

	for {
		c.clear()
		c.drawHeader("CAFE MANAGEMENT SYSTEM: ROLE SELECT")
		fmt.Fprintln(c.out, "\nWho is using the system?")
		fmt.Fprintln(c.out, "1. Boss / Admin (Dashboard)")
		fmt.Fprintln(c.out, "2. Cashier")
		fmt.Fprintln(c.out, "3. Barista")
		fmt.Fprintln(c.out, "4. Customer (Self-Order)")
		fmt.Fprintln(c.out, "5. Shutdown System")

		switch c.prompt("\nSelect Role: ") {
		case "1":
			if _, ok := c.verifyLogin("boss"); ok {
				c.bossDashboard()
			}
		case "2":
			if acc, ok := c.verifyLogin("cashier"); ok {
				c.cashierMenu(acc.Username)
			}
		case "3":
			if _, ok := c.verifyLogin("barista"); ok {
				c.baristaMenu()
			}
		case "4":
			c.customerKiosk()
		case "5":
			fmt.Fprintln(c.out, "Shutting down...")
			return
		default:
			fmt.Fprintln(c.out, "Invalid Selection.")
			c.pause()
		}
	}
}

// adminUnlock gates startup behind a boss/owner login.
func (c *Console) adminUnlock() bool {
	for {
		c.clear()
		c.drawHeader("CAFE MANAGEMENT SYSTEM")
		fmt.Fprintln(c.out, "\n(System Locked)")
		fmt.Fprintln(c.out, "--- ADMIN UNLOCK REQUIRED ---")

		username := c.prompt("\nUsername: ")
		password := c.promptPassword("Password: ")

		if _, ok := c.auth.Login(username, password, "boss"); ok {
			fmt.Fprintln(c.out, "\nACCESS GRANTED. SYSTEM UNLOCKED.")
			return true
		}
		fmt.Fprintln(c.out, "\nACCESS DENIED. BOSS ONLY.")
		c.pause()
	}
}

// verifyLogin runs the per-role login prompt. Boss and owner accounts
// satisfy any required role.
func (c *Console) verifyLogin(requiredRole string) (acc accountView, ok bool) {
	c.clear()
	c.drawHeader(fmt.Sprintf("%s LOGIN", strings.ToUpper(requiredRole)))

	username := c.prompt("Username: ")
	password := c.promptPassword("Password: ")

	account, ok := c.auth.Login(username, password, requiredRole)
	if !ok {
		fmt.Fprintln(c.out, "Invalid Credentials.")
		c.pause()
		return accountView{}, false
	}
	return accountView{Username: account.Username, Role: account.Role}, true
}

// accountView is the slice of account data the screens need.
type accountView struct {
	Username string
	Role     string
}
