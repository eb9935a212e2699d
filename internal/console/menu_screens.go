package console

import (
	"fmt"
	"sort"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/pkg/utils"
)

func (c *Console) menuManagement() {
	for {
		c.clear()
		c.drawHeader("MENU MANAGEMENT")
		fmt.Fprintln(c.out)
		c.viewMenu()
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "1. Add Menu Item")
		fmt.Fprintln(c.out, "2. Update Item Price")
		fmt.Fprintln(c.out, "3. Remove Menu Item")
		fmt.Fprintln(c.out, "4. View Recipes")
		fmt.Fprintln(c.out, "5. Back to Dashboard")

		switch c.prompt("Select: ") {
		case "1":
			c.addMenuItem()
			c.pause()
		case "2":
			c.updateMenuPrice()
			c.pause()
		case "3":
			c.removeMenuItem()
			c.pause()
		case "4":
			c.viewRecipes()
			c.pause()
		case "5":
			return
		}
	}
}

func (c *Console) addMenuItem() {
	c.clear()
	c.drawHeader("ADD MENU ITEM")

	name := c.prompt("Enter Item Name: ")
	if utils.IsEmpty(name) {
		fmt.Fprintln(c.out, "Item name cannot be empty.")
		return
	}
	price, ok := c.promptFloat(fmt.Sprintf("Enter Price (%s): ", c.glyph))
	if !ok || price <= 0 {
		fmt.Fprintln(c.out, "Invalid price. Must be a positive number.")
		return
	}

	if err := c.menu.AddItem(name, price); err != nil {
		fmt.Fprintf(c.out, "Could not add item: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "'%s' added to the menu at %s%s.\n", name, c.glyph, utils.FormatMoney(price))

	if c.prompt("Define a recipe for this item now? (y/n): ") != "y" {
		fmt.Fprintln(c.out, "No recipe set. Item will always show as available.")
		return
	}
	recipe, ok := c.buildRecipe()
	if !ok {
		fmt.Fprintln(c.out, "Recipe not saved.")
		return
	}
	if err := c.menu.SetRecipe(name, recipe); err != nil {
		fmt.Fprintf(c.out, "Could not save recipe: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Recipe saved.")
}

// buildRecipe collects ingredient/amount pairs until the operator enters a
// blank name. Every ingredient must already exist in inventory.
func (c *Console) buildRecipe() (models.Recipe, bool) {
	recipe := models.Recipe{}
	fmt.Fprintln(c.out, "\nEnter recipe lines. Leave the ingredient name blank to finish.")
	for {
		name := c.prompt("Ingredient name: ")
		if utils.IsEmpty(name) {
			break
		}
		_, level, found := c.inventory.FindIngredient(name)
		if !found {
			fmt.Fprintf(c.out, "Ingredient '%s' is not in inventory. Add it first.\n", name)
			continue
		}
		amount, ok := c.promptInt(fmt.Sprintf("Amount per serving (%s): ", level.Unit))
		if !ok || amount <= 0 {
			fmt.Fprintln(c.out, "Invalid amount. Must be a positive number.")
			continue
		}
		recipe[name] = amount
	}
	if len(recipe) == 0 {
		return nil, false
	}

	names := make([]string, 0, len(recipe))
	for name := range recipe {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(c.out, "\nRecipe summary:")
	for _, name := range names {
		fmt.Fprintf(c.out, "  - %s: %d\n", name, recipe[name])
	}
	if c.prompt("Save this recipe? (y/n): ") != "y" {
		return nil, false
	}
	return recipe, true
}

func (c *Console) updateMenuPrice() {
	items := c.viewMenu()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "Menu is empty.")
		return
	}
	choice, ok := parseChoice(c.prompt("Select item number: "), len(items))
	if !ok {
		fmt.Fprintln(c.out, "Invalid selection.")
		return
	}
	item := items[choice-1]

	price, ok := c.promptFloat(fmt.Sprintf("New price for %s (%s): ", item.Name, c.glyph))
	if !ok || price <= 0 {
		fmt.Fprintln(c.out, "Invalid price. Must be a positive number.")
		return
	}
	if err := c.menu.UpdatePrice(item.Name, price); err != nil {
		fmt.Fprintf(c.out, "Could not update price: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "%s is now %s%s.\n", item.Name, c.glyph, utils.FormatMoney(price))
}

func (c *Console) removeMenuItem() {
	items := c.viewMenu()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "Menu is empty.")
		return
	}
	choice, ok := parseChoice(c.prompt("Select item number to remove (or 0 to cancel): "), len(items))
	if !ok {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}
	item := items[choice-1]

	if c.prompt(fmt.Sprintf("Remove '%s' and its recipe? (y/n): ", item.Name)) != "y" {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}
	if err := c.menu.RemoveItem(item.Name); err != nil {
		fmt.Fprintf(c.out, "Could not remove item: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Removed.")
}
