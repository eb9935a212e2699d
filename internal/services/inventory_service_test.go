package services

import (
	"errors"
	"path/filepath"
	"testing"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"
)

func newTestInventory(t *testing.T) InventoryService {
	t.Helper()
	dir := t.TempDir()
	invRepo := repositories.NewInventoryRepository(filepath.Join(dir, "inventory.txt"))
	expenseRepo := repositories.NewExpenseRepository(filepath.Join(dir, "expenses.txt"), "₱")
	svc, err := NewInventoryService(invRepo, expenseRepo)
	if err != nil {
		t.Fatalf("new inventory service: %v", err)
	}
	return svc
}

func quantityOf(t *testing.T, svc InventoryService, name string) int {
	t.Helper()
	_, level, ok := svc.FindIngredient(name)
	if !ok {
		t.Fatalf("ingredient %q not found", name)
	}
	return level.Quantity
}

func TestDeductHappyPathDecrementsEveryLine(t *testing.T) {
	svc := newTestInventory(t)
	recipes := repositories.DefaultRecipeBook()

	ok, blocker, err := svc.Deduct("Hot Coffee", 2, recipes)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if !ok {
		t.Fatalf("deduct refused, blocker = %q", blocker)
	}

	// Hot Coffee uses 15 beans, 1 cup, 1 lid per serving.
	if got := quantityOf(t, svc, "Coffee Beans"); got != 970 {
		t.Errorf("Coffee Beans = %d, want 970", got)
	}
	if got := quantityOf(t, svc, "Cups"); got != 498 {
		t.Errorf("Cups = %d, want 498", got)
	}
	if got := quantityOf(t, svc, "Lids"); got != 498 {
		t.Errorf("Lids = %d, want 498", got)
	}
}

func TestDeductIsAllOrNothing(t *testing.T) {
	svc := newTestInventory(t)
	recipes := models.RecipeBook{
		"Mega Latte": {"Coffee Beans": 10, "Milk": 2000},
	}

	// Milk starts at 5000: two servings need 4000 (fine), three need 6000.
	ok, blocker, err := svc.Deduct("Mega Latte", 3, recipes)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if ok {
		t.Fatalf("deduct should have been refused")
	}
	if blocker != "Milk" {
		t.Errorf("blocker = %q, want Milk", blocker)
	}

	// Refusal must leave every ingredient untouched, including the ones that
	// had enough stock.
	if got := quantityOf(t, svc, "Coffee Beans"); got != 1000 {
		t.Errorf("Coffee Beans = %d, want 1000 (unchanged)", got)
	}
	if got := quantityOf(t, svc, "Milk"); got != 5000 {
		t.Errorf("Milk = %d, want 5000 (unchanged)", got)
	}
}

func TestDeductNamesMissingIngredient(t *testing.T) {
	svc := newTestInventory(t)
	recipes := models.RecipeBook{
		"Unicorn Frappe": {"Unicorn Dust": 1, "Milk": 100},
	}

	ok, blocker, err := svc.Deduct("Unicorn Frappe", 1, recipes)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if ok {
		t.Fatalf("deduct should have been refused")
	}
	if blocker != "Unicorn Dust" {
		t.Errorf("blocker = %q, want Unicorn Dust", blocker)
	}
	if got := quantityOf(t, svc, "Milk"); got != 5000 {
		t.Errorf("Milk = %d, want 5000 (unchanged)", got)
	}
}

func TestDeductWithoutRecipeSucceedsAndTouchesNothing(t *testing.T) {
	svc := newTestInventory(t)

	ok, blocker, err := svc.Deduct("Bottled Water", 3, models.RecipeBook{})
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if !ok || blocker != "" {
		t.Errorf("got ok=%v blocker=%q, want trivially available", ok, blocker)
	}
	if got := quantityOf(t, svc, "Coffee Beans"); got != 1000 {
		t.Errorf("Coffee Beans = %d, want 1000", got)
	}
}

func TestDeductRejectsNonPositiveQuantity(t *testing.T) {
	svc := newTestInventory(t)
	if _, _, err := svc.Deduct("Hot Coffee", 0, repositories.DefaultRecipeBook()); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestIsAvailableFollowsRecipeStock(t *testing.T) {
	svc := newTestInventory(t)
	recipes := repositories.DefaultRecipeBook()

	if !svc.IsAvailable("Hot Coffee", recipes) {
		t.Errorf("Hot Coffee should be available with default stock")
	}
	if !svc.IsAvailable("No Recipe Item", recipes) {
		t.Errorf("an item without a recipe is always available")
	}

	greedy := models.RecipeBook{"Vat of Coffee": {"Coffee Beans": 5000}}
	if svc.IsAvailable("Vat of Coffee", greedy) {
		t.Errorf("Vat of Coffee should be unavailable with 1000 beans in stock")
	}
}

func TestAddOrUpdateSumsExistingQuantity(t *testing.T) {
	svc := newTestInventory(t)

	if err := svc.AddOrUpdate("Raw Materials", "Coffee Beans", 500, "grams"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := quantityOf(t, svc, "Coffee Beans"); got != 1500 {
		t.Errorf("Coffee Beans = %d, want 1500", got)
	}
}

func TestAddOrUpdateRejectsBadInput(t *testing.T) {
	svc := newTestInventory(t)
	if err := svc.AddOrUpdate("", "Thing", 5, "pieces"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty category: err = %v, want ErrValidation", err)
	}
	if err := svc.AddOrUpdate("Dairy", "Milk", 0, "ml"); !errors.Is(err, ErrValidation) {
		t.Errorf("zero qty: err = %v, want ErrValidation", err)
	}
}

func TestRestockRequiresExistingIngredient(t *testing.T) {
	svc := newTestInventory(t)

	if err := svc.Restock("Dairy", "Milk", 1000, 400); err != nil {
		t.Fatalf("restock: %v", err)
	}
	if got := quantityOf(t, svc, "Milk"); got != 6000 {
		t.Errorf("Milk = %d, want 6000", got)
	}

	if err := svc.Restock("Dairy", "Cream", 100, 50); !errors.Is(err, ErrIngredientNotFound) {
		t.Errorf("unknown ingredient: err = %v, want ErrIngredientNotFound", err)
	}
	if err := svc.Restock("Bakery", "Flour", 100, 50); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unknown category: err = %v, want ErrCategoryNotFound", err)
	}
}

func TestDeleteLastIngredientRemovesCategory(t *testing.T) {
	svc := newTestInventory(t)

	deleted, err := svc.Delete("Dairy", "Milk")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatalf("Milk should have been deleted")
	}
	if svc.HasCategory("Dairy") {
		t.Errorf("empty Dairy category should not persist")
	}
}

func TestDeleteMissingIngredientIsNoOp(t *testing.T) {
	svc := newTestInventory(t)

	deleted, err := svc.Delete("Dairy", "Cream")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Errorf("Cream does not exist, delete should report false")
	}
	if !svc.HasCategory("Dairy") {
		t.Errorf("Dairy must survive a failed delete")
	}
}

func TestIngredientsAreSortedByCategoryThenName(t *testing.T) {
	svc := newTestInventory(t)
	out := svc.Ingredients()
	if len(out) != 8 {
		t.Fatalf("got %d ingredients, want 8", len(out))
	}
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.Category > cur.Category || (prev.Category == cur.Category && prev.Name > cur.Name) {
			t.Errorf("ingredients out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

func TestStockChangesSurviveReload(t *testing.T) {
	dir := t.TempDir()
	invRepo := repositories.NewInventoryRepository(filepath.Join(dir, "inventory.txt"))
	expenseRepo := repositories.NewExpenseRepository(filepath.Join(dir, "expenses.txt"), "₱")

	svc, err := NewInventoryService(invRepo, expenseRepo)
	if err != nil {
		t.Fatal(err)
	}
	if ok, _, err := svc.Deduct("Hot Coffee", 1, repositories.DefaultRecipeBook()); err != nil || !ok {
		t.Fatalf("deduct failed: ok=%v err=%v", ok, err)
	}

	reloaded, err := NewInventoryService(invRepo, expenseRepo)
	if err != nil {
		t.Fatal(err)
	}
	if got := quantityOf(t, reloaded, "Coffee Beans"); got != 985 {
		t.Errorf("Coffee Beans after reload = %d, want 985", got)
	}
}
