package console

import (
	"fmt"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/pkg/utils"
)

func (c *Console) inventoryManagement() {
	for {
		c.clear()
		c.drawHeader("INVENTORY MANAGEMENT")
		fmt.Fprintln(c.out)
		c.viewStocks()
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "1. Restock EXISTING Ingredient")
		fmt.Fprintln(c.out, "2. Add NEW Ingredient")
		fmt.Fprintln(c.out, "3. Delete Ingredient")
		fmt.Fprintln(c.out, "4. Back to Dashboard")

		switch c.prompt("Select: ") {
		case "1":
			c.restockIngredient()
			c.pause()
		case "2":
			c.addIngredient()
			c.pause()
		case "3":
			c.deleteIngredient()
			c.pause()
		case "4":
			return
		}
	}
}

func (c *Console) viewStocks() {
	fmt.Fprintln(c.out, "=== INGREDIENT STOCKS ===")
	lastCategory := ""
	for _, ing := range c.inventory.Ingredients() {
		if ing.Category != lastCategory {
			fmt.Fprintf(c.out, "\n[%s]\n", ing.Category)
			fmt.Fprintf(c.out, "%-20s | %12s | %8s\n", "Item", "Qty", "Unit")
			fmt.Fprintln(c.out, "--------------------------------------------------")
			lastCategory = ing.Category
		}
		marker := ""
		if ing.Quantity < 50 {
			marker = "  << LOW"
		}
		fmt.Fprintf(c.out, "%-20s | %12d | %8s%s\n", ing.Name, ing.Quantity, ing.Unit, marker)
	}
}

func (c *Console) restockIngredient() {
	category := c.prompt("Enter Category: ")
	if !c.inventory.HasCategory(category) {
		fmt.Fprintln(c.out, "Category not found.")
		return
	}
	name := c.prompt("Enter Item: ")

	qty, ok := c.promptInt("Enter Qty to Add: ")
	if !ok || qty <= 0 {
		fmt.Fprintln(c.out, "Invalid Qty. Must be a positive number.")
		return
	}
	cost, ok := c.promptFloat(fmt.Sprintf("Enter Cost (%s): ", c.glyph))
	if !ok {
		fmt.Fprintln(c.out, "Invalid Cost")
		return
	}

	if err := c.inventory.Restock(category, name, qty, cost); err != nil {
		fmt.Fprintf(c.out, "Restock failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Stock Updated & Expense Recorded.")
}

func (c *Console) addIngredient() {
	c.clear()
	c.drawHeader("ADD NEW INGREDIENT")

	category := c.prompt("Enter Category (e.g., Raw Materials, Dairy, Syrup): ")
	name := c.prompt("Enter Ingredient Name: ")

	if _, _, exists := c.inventory.FindIngredient(name); exists {
		fmt.Fprintf(c.out, "\nError: Ingredient '%s' already exists. Use 'Restock Existing Ingredient' instead.\n", name)
		return
	}

	unit := c.prompt("Enter unit (grams / ml / pieces): ")
	if unit != "grams" && unit != "ml" && unit != "pieces" {
		fmt.Fprintln(c.out, "Invalid unit. Choose one of: grams / ml / pieces")
		return
	}

	qty, ok := c.promptInt("Enter starting quantity (in chosen unit) [e.g., 5000]: ")
	if !ok || qty <= 0 {
		fmt.Fprintln(c.out, "Invalid quantity. Must be a positive number.")
		return
	}

	if err := c.inventory.AddOrUpdate(category, name, qty, unit); err != nil {
		fmt.Fprintf(c.out, "Add failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nSUCCESS: Ingredient '%s' added to inventory under '%s' with %d %s stock.\n", name, category, qty, unit)
}

func (c *Console) deleteIngredient() {
	ingredients := c.inventory.Ingredients()
	if len(ingredients) == 0 {
		fmt.Fprintln(c.out, "No ingredients to delete.")
		return
	}

	fmt.Fprintln(c.out, "\nSelect ingredient to DELETE:")
	for i, ing := range ingredients {
		fmt.Fprintf(c.out, "%d. [%s] %s - %d %s\n", i+1, ing.Category, ing.Name, ing.Quantity, ing.Unit)
	}

	input := c.prompt("Enter number (or 0 to cancel): ")
	if input == "0" {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}
	choice, ok := parseChoice(input, len(ingredients))
	if !ok {
		fmt.Fprintln(c.out, "Invalid selection.")
		return
	}

	chosen := ingredients[choice-1]
	if c.prompt(fmt.Sprintf("Are you sure you want to delete '%s' from '%s'? (y/n): ", chosen.Name, chosen.Category)) != "y" {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}

	deleted, err := c.inventory.Delete(chosen.Category, chosen.Name)
	if err != nil {
		utils.LogError(err, "Failed to delete ingredient")
		fmt.Fprintln(c.out, "Could not delete the ingredient.")
		return
	}
	if deleted {
		fmt.Fprintln(c.out, "Deleted.")
	} else {
		fmt.Fprintln(c.out, "Ingredient not found.")
	}
}

// viewMenu prints the numbered price list with availability and returns the
// items in display order for selection by number.
func (c *Console) viewMenu() []models.MenuItem {
	recipes := c.menu.Recipes()
	items := c.menu.Items()

	fmt.Fprintf(c.out, "%-5s | %-25s | %10s | %-12s\n", "No", "Item Name", "Price", "Status")
	fmt.Fprintln(c.out, "============================================================")
	for i, item := range items {
		status := "OUT OF STOCK"
		if c.inventory.IsAvailable(item.Name, recipes) {
			status = "AVAILABLE"
		}
		fmt.Fprintf(c.out, "%-5d | %-25s | %10s | %s\n", i+1, item.Name, c.glyph+utils.FormatMoney(item.Price), status)
	}
	fmt.Fprintln(c.out, "------------------------------------------------------------")
	return items
}
