package services

import (
	"errors"
	"fmt"
	"sort"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"

	"cafe_pos_backend/pkg/utils"
)

// --- Custom Service Errors for Menu ---
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrMenuItemExists   = errors.New("menu item already exists")
)

// --- MenuService Interface ---
//
// MenuService owns the price list and the recipe catalog. A recipe is
// optional for a menu item; removing an item removes its recipe with it.
type MenuService interface {
	Items() []models.MenuItem
	Price(name string) (float64, bool)
	AddItem(name string, price float64) error
	UpdatePrice(name string, price float64) error
	RemoveItem(name string) error

	Recipes() models.RecipeBook
	Recipe(name string) (models.Recipe, bool)
	SetRecipe(name string, recipe models.Recipe) error
}

// --- menuService Implementation ---
type menuService struct {
	menu       models.Menu
	book       models.RecipeBook
	menuRepo   repositories.MenuRepository
	recipeRepo repositories.RecipeRepository
	inventory  InventoryService
}

// NewMenuService loads the menu and recipe catalog, seeding defaults on
// first run.
func NewMenuService(menuRepo repositories.MenuRepository, recipeRepo repositories.RecipeRepository, inventory InventoryService) (MenuService, error) {
	menu, skippedMenu, err := menuRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	book, skippedRecipes, err := recipeRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	if skippedMenu > 0 {
		utils.LogWarn("Skipped malformed menu records", map[string]interface{}{"count": skippedMenu})
	}
	if skippedRecipes > 0 {
		utils.LogWarn("Skipped malformed recipe records", map[string]interface{}{"count": skippedRecipes})
	}
	return &menuService{
		menu:       menu,
		book:       book,
		menuRepo:   menuRepo,
		recipeRepo: recipeRepo,
		inventory:  inventory,
	}, nil
}

func (s *menuService) Items() []models.MenuItem {
	items := make([]models.MenuItem, 0, len(s.menu))
	for name, price := range s.menu {
		items = append(items, models.MenuItem{Name: name, Price: price})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func (s *menuService) Price(name string) (float64, bool) {
	price, ok := s.menu[name]
	return price, ok
}

func (s *menuService) AddItem(name string, price float64) error {
	if utils.IsEmpty(name) {
		return fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be a positive number", ErrValidation)
	}
	if _, ok := s.menu[name]; ok {
		return fmt.Errorf("%w: %s", ErrMenuItemExists, name)
	}

	s.menu[name] = price
	return s.menuRepo.Save(s.menu)
}

func (s *menuService) UpdatePrice(name string, price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be a positive number", ErrValidation)
	}
	if _, ok := s.menu[name]; !ok {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, name)
	}

	s.menu[name] = price
	return s.menuRepo.Save(s.menu)
}

// RemoveItem deletes the item and its recipe together.
func (s *menuService) RemoveItem(name string) error {
	if _, ok := s.menu[name]; !ok {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, name)
	}

	delete(s.menu, name)
	delete(s.book, name)

	if err := s.menuRepo.Save(s.menu); err != nil {
		return err
	}
	return s.recipeRepo.Save(s.book)
}

func (s *menuService) Recipes() models.RecipeBook {
	return s.book
}

func (s *menuService) Recipe(name string) (models.Recipe, bool) {
	recipe, ok := s.book[name]
	return recipe, ok
}

// SetRecipe defines or replaces an item's recipe. Every referenced
// ingredient must already exist in the inventory, and every amount must be
// positive.
func (s *menuService) SetRecipe(name string, recipe models.Recipe) error {
	if _, ok := s.menu[name]; !ok {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, name)
	}
	for ingredient, amount := range recipe {
		if amount <= 0 {
			return fmt.Errorf("%w: amount for %s must be a positive number", ErrValidation, ingredient)
		}
		if _, _, ok := s.inventory.FindIngredient(ingredient); !ok {
			return fmt.Errorf("%w: %s", ErrIngredientNotFound, ingredient)
		}
	}

	s.book[name] = recipe
	return s.recipeRepo.Save(s.book)
}
