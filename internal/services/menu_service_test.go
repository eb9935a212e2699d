package services

import (
	"errors"
	"path/filepath"
	"testing"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"
)

func newTestMenu(t *testing.T) MenuService {
	t.Helper()
	dir := t.TempDir()
	invRepo := repositories.NewInventoryRepository(filepath.Join(dir, "inventory.txt"))
	expenseRepo := repositories.NewExpenseRepository(filepath.Join(dir, "expenses.txt"), "₱")
	inventory, err := NewInventoryService(invRepo, expenseRepo)
	if err != nil {
		t.Fatal(err)
	}

	menuRepo := repositories.NewMenuRepository(filepath.Join(dir, "menu.txt"))
	recipeRepo := repositories.NewRecipeRepository(filepath.Join(dir, "recipes.txt"))
	svc, err := NewMenuService(menuRepo, recipeRepo, inventory)
	if err != nil {
		t.Fatalf("new menu service: %v", err)
	}
	return svc
}

func TestItemsAreSortedByName(t *testing.T) {
	svc := newTestMenu(t)
	items := svc.Items()
	if len(items) != 12 {
		t.Fatalf("got %d items, want 12", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Name > items[i].Name {
			t.Errorf("items out of order: %q before %q", items[i-1].Name, items[i].Name)
		}
	}
}

func TestAddItemRejectsDuplicatesAndBadPrices(t *testing.T) {
	svc := newTestMenu(t)

	if err := svc.AddItem("Espresso", 85); err != nil {
		t.Fatalf("add: %v", err)
	}
	if price, ok := svc.Price("Espresso"); !ok || price != 85 {
		t.Errorf("Price(Espresso) = %v, %v", price, ok)
	}

	if err := svc.AddItem("Espresso", 90); !errors.Is(err, ErrMenuItemExists) {
		t.Errorf("duplicate: err = %v, want ErrMenuItemExists", err)
	}
	if err := svc.AddItem("Free Refill", 0); !errors.Is(err, ErrValidation) {
		t.Errorf("zero price: err = %v, want ErrValidation", err)
	}
}

func TestUpdatePriceRequiresExistingItem(t *testing.T) {
	svc := newTestMenu(t)

	if err := svc.UpdatePrice("Hot Coffee", 95); err != nil {
		t.Fatalf("update: %v", err)
	}
	if price, _ := svc.Price("Hot Coffee"); price != 95 {
		t.Errorf("price = %v, want 95", price)
	}
	if err := svc.UpdatePrice("Unknown Drink", 95); !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestRemoveItemAlsoRemovesRecipe(t *testing.T) {
	svc := newTestMenu(t)

	if _, ok := svc.Recipe("Hot Coffee"); !ok {
		t.Fatalf("Hot Coffee should have a default recipe")
	}
	if err := svc.RemoveItem("Hot Coffee"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := svc.Price("Hot Coffee"); ok {
		t.Errorf("Hot Coffee still priced after removal")
	}
	if _, ok := svc.Recipe("Hot Coffee"); ok {
		t.Errorf("Hot Coffee recipe should go with the item")
	}
}

func TestSetRecipeValidatesIngredientsExist(t *testing.T) {
	svc := newTestMenu(t)
	if err := svc.AddItem("Espresso", 85); err != nil {
		t.Fatal(err)
	}

	err := svc.SetRecipe("Espresso", models.Recipe{"Phantom Syrup": 10})
	if !errors.Is(err, ErrIngredientNotFound) {
		t.Errorf("unknown ingredient: err = %v, want ErrIngredientNotFound", err)
	}

	err = svc.SetRecipe("Espresso", models.Recipe{"Coffee Beans": 0})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("zero amount: err = %v, want ErrValidation", err)
	}

	if err := svc.SetRecipe("Espresso", models.Recipe{"Coffee Beans": 18, "Cups": 1}); err != nil {
		t.Fatalf("valid recipe: %v", err)
	}
	recipe, ok := svc.Recipe("Espresso")
	if !ok || recipe["Coffee Beans"] != 18 {
		t.Errorf("recipe = %+v", recipe)
	}

	if err := svc.SetRecipe("Not On Menu", models.Recipe{"Coffee Beans": 1}); !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("missing item: err = %v, want ErrMenuItemNotFound", err)
	}
}
