package console

import (
	"fmt"
	"sort"

	"cafe_pos_backend/pkg/utils"
)

func (c *Console) baristaMenu() {
	for {
		c.clear()
		c.drawHeader("BARISTA STATION: KITCHEN DISPLAY")

		pending, err := c.sales.PendingLines()
		if err != nil {
			utils.LogError(err, "Failed to read pending orders")
		}

		fmt.Fprintln(c.out, "\n--- PENDING ORDERS ---")
		for _, line := range pending {
			fmt.Fprintln(c.out, line)
		}
		if len(pending) == 0 {
			fmt.Fprintln(c.out, "(No pending orders)")
		}

		fmt.Fprintln(c.out, "\n1. Mark Order COMPLETE")
		fmt.Fprintln(c.out, "2. View Recipes")
		fmt.Fprintln(c.out, "3. Check Inventory")
		fmt.Fprintln(c.out, "4. Refresh")
		fmt.Fprintln(c.out, "5. Logout")

		switch c.prompt("Select: ") {
		case "1":
			c.markOrderComplete()
		case "2":
			c.viewRecipes()
		case "3":
			c.clear()
			c.viewStocks()
			c.pause()
		case "5":
			return
		}
	}
}

func (c *Console) markOrderComplete() {
	id, ok := c.promptInt("Enter Sale ID to Complete: ")
	if !ok || id <= 0 {
		fmt.Fprintln(c.out, "Invalid id.")
		c.pause()
		return
	}
	found, err := c.sales.MarkComplete(id)
	if err != nil {
		utils.LogError(err, "Failed to complete order")
		fmt.Fprintln(c.out, "Could not update the order.")
	} else if found {
		fmt.Fprintln(c.out, "Completed!")
	} else {
		fmt.Fprintln(c.out, "Order not found.")
	}
	c.pause()
}

func (c *Console) viewRecipes() {
	c.clear()
	c.drawHeader("MENU RECIPES")
	for _, item := range c.menu.Items() {
		recipe, ok := c.menu.Recipe(item.Name)
		if !ok {
			continue
		}
		fmt.Fprintf(c.out, "\n[%s]\n", item.Name)
		ingredients := make([]string, 0, len(recipe))
		for ingredient := range recipe {
			ingredients = append(ingredients, ingredient)
		}
		sort.Strings(ingredients)
		for _, ingredient := range ingredients {
			unit := "units"
			if _, level, found := c.inventory.FindIngredient(ingredient); found {
				unit = level.Unit
			}
			fmt.Fprintf(c.out, " - %s: %d %s\n", ingredient, recipe[ingredient], unit)
		}
		fmt.Fprintln(c.out, "------------------------------")
	}
	c.pause()
}
