package console

import (
	"fmt"
	"time"

	"cafe_pos_backend/internal/models"

	"github.com/spf13/cast"

	"cafe_pos_backend/pkg/utils"
)

func (c *Console) cashierMenu(operator string) {
	for {
		c.clear()
		c.drawHeader("CASHIER TERMINAL")
		fmt.Fprintln(c.out, "1. Record New Sale")
		fmt.Fprintln(c.out, "2. Check Item Availability")
		fmt.Fprintln(c.out, "3. View Inventory (Read-Only)")
		fmt.Fprintln(c.out, "4. Report Issue")
		fmt.Fprintln(c.out, "5. Logout")

		switch c.prompt("Select: ") {
		case "1":
			c.recordSale(operator)
		case "2":
			c.checkAvailability()
		case "3":
			c.clear()
			c.viewStocks()
			c.pause()
		case "4":
			c.reportIssue()
		case "5":
			return
		}
	}
}

func (c *Console) customerKiosk() {
	for {
		c.clear()
		c.drawHeader("SELF-ORDER")
		fmt.Fprintln(c.out, "Welcome! Please place your order.")
		c.recordSale("Kiosk-Customer")
		if c.prompt("\nOrder another? (y/n): ") != "y" {
			c.clear()
			c.drawWidget("ORDER SENT", "PLEASE WAIT")
			c.pause()
			return
		}
	}
}

// recordSale runs the cart loop and finalizes through the sale ledger.
// An out-of-stock line aborts only itself; the cart keeps going.
func (c *Console) recordSale(operator string) {
	var cart []models.CartItem
	recipes := c.menu.Recipes()

	for {
		c.clear()
		c.drawHeader(fmt.Sprintf("NEW ORDER: %s", operator))

		if len(cart) > 0 {
			fmt.Fprintln(c.out, "--- BASKET ---")
			subtotal := 0.0
			for _, line := range cart {
				fmt.Fprintf(c.out, " > %-20s x%d = %s%s\n", line.Name, line.Qty, c.glyph, utils.FormatMoney(line.Total()))
				subtotal += line.Total()
			}
			fmt.Fprintf(c.out, " SUBTOTAL: %s%s\n----------------------\n", c.glyph, utils.FormatMoney(subtotal))
		}

		items := c.viewMenu()
		fmt.Fprintln(c.out, "[0] FINALIZE & PAY")

		input := c.prompt("\nEnter item number: ")
		if input == "0" {
			if len(cart) > 0 {
				break
			}
			continue
		}
		choice, ok := parseChoice(input, len(items))
		if !ok {
			continue
		}
		item := items[choice-1]

		if !c.inventory.IsAvailable(item.Name, recipes) {
			c.drawAlert("OUT OF STOCK")
			c.pause()
			continue
		}

		qty, ok := c.promptInt("Quantity: ")
		if !ok || qty <= 0 {
			continue
		}
		cart = append(cart, models.CartItem{Name: item.Name, Qty: qty, Price: item.Price})
	}

	result, err := c.sales.Checkout(cart, operator, recipes)
	if err != nil {
		utils.LogError(err, "Checkout failed")
		fmt.Fprintln(c.out, "Checkout failed; see log for details.")
		c.pause()
		return
	}

	c.clear()
	for _, skipped := range result.Skipped {
		c.drawAlert(fmt.Sprintf("%s skipped: not enough %s", skipped.Item, skipped.Ingredient))
	}
	for _, sale := range result.Sales {
		fmt.Fprintf(c.out, "Sale #%d recorded successfully!\n", sale.ID)
	}
	fmt.Fprint(c.out, result.Receipt)
	fmt.Fprintln(c.out, "(Receipt saved).")
	c.pause()
}

func (c *Console) checkAvailability() {
	c.clear()
	c.drawHeader("AVAILABILITY CHECK")
	recipes := c.menu.Recipes()
	for _, item := range c.menu.Items() {
		status := "OUT OF STOCK"
		if c.inventory.IsAvailable(item.Name, recipes) {
			status = "AVAILABLE"
		}
		fmt.Fprintf(c.out, "%-25s : %s\n", item.Name, status)
	}
	c.pause()
}

func (c *Console) reportIssue() {
	message := c.prompt("Issue: ")
	if err := c.alerts.Append(message, time.Now()); err != nil {
		utils.LogError(err, "Failed to record alert")
		fmt.Fprintln(c.out, "Could not send the alert.")
	} else {
		fmt.Fprintln(c.out, "Sent.")
	}
	c.pause()
}

func parseChoice(input string, max int) (int, bool) {
	n, err := cast.ToIntE(input)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}
