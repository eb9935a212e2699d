package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"

	"cafe_pos_backend/pkg/utils"
)

// --- Custom Service Errors for Inventory ---
var (
	ErrValidation         = errors.New("validation error") // Generic validation error
	ErrCategoryNotFound   = errors.New("category not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient already exists")
)

// --- InventoryService Interface ---
//
// InventoryService owns the ingredient store: per-ingredient quantities,
// availability checks against a recipe's bill-of-materials, and the
// all-or-nothing deduction performed at sale time. Every mutation persists
// the full store before returning.
type InventoryService interface {
	AddOrUpdate(category, name string, qty int, unit string) error
	Restock(category, name string, qty int, cost float64) error
	Delete(category, name string) (bool, error)

	IsAvailable(itemName string, recipes models.RecipeBook) bool
	Deduct(itemName string, orderedQty int, recipes models.RecipeBook) (bool, string, error)

	Ingredients() []models.Ingredient
	FindIngredient(name string) (string, models.StockLevel, bool)
	HasCategory(category string) bool
}

// --- inventoryService Implementation ---
type inventoryService struct {
	mu          sync.Mutex
	stock       models.Stock
	invRepo     repositories.InventoryRepository
	expenseRepo repositories.ExpenseRepository
}

// NewInventoryService loads the ingredient store (seeding defaults on first
// run) and returns the service owning it for the process lifetime.
func NewInventoryService(invRepo repositories.InventoryRepository, expenseRepo repositories.ExpenseRepository) (InventoryService, error) {
	stock, skipped, err := invRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	if skipped > 0 {
		utils.LogWarn("Skipped malformed inventory records", map[string]interface{}{"count": skipped})
	}
	return &inventoryService{
		stock:       stock,
		invRepo:     invRepo,
		expenseRepo: expenseRepo,
	}, nil
}

// findLevel locates an ingredient by name across all categories, first match
// wins. Categories are scanned in sorted order so the match is deterministic;
// the design assumes ingredient names are globally unique.
func (s *inventoryService) findLevel(name string) (string, *models.StockLevel, bool) {
	categories := make([]string, 0, len(s.stock))
	for cat := range s.stock {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		if level, ok := s.stock[cat][name]; ok {
			return cat, level, true
		}
	}
	return "", nil, false
}

func (s *inventoryService) AddOrUpdate(category, name string, qty int, unit string) error {
	if utils.IsEmpty(category) || utils.IsEmpty(name) {
		return fmt.Errorf("%w: category and ingredient name cannot be empty", ErrValidation)
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stock[category] == nil {
		s.stock[category] = map[string]*models.StockLevel{}
	}
	if level, ok := s.stock[category][name]; ok {
		level.Quantity += qty
		if level.Unit == "" && !utils.IsEmpty(unit) {
			level.Unit = unit
		}
	} else {
		s.stock[category][name] = &models.StockLevel{Quantity: qty, Unit: unit}
	}

	return s.invRepo.Save(s.stock)
}

func (s *inventoryService) Restock(category, name string, qty int, cost float64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: restock quantity must be a positive number", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stock[category] == nil {
		return ErrCategoryNotFound
	}
	level, ok := s.stock[category][name]
	if !ok {
		return ErrIngredientNotFound
	}

	level.Quantity += qty
	if err := s.invRepo.Save(s.stock); err != nil {
		return err
	}

	if err := s.expenseRepo.AppendRestock(name, cost, time.Now()); err != nil {
		return fmt.Errorf("stock saved but expense record failed: %w", err)
	}

	utils.LogInfo("Ingredient restocked", map[string]interface{}{
		"category": category, "ingredient": name, "added": qty,
	})
	return nil
}

func (s *inventoryService) Delete(category, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stock[category] == nil {
		return false, nil
	}
	if _, ok := s.stock[category][name]; !ok {
		return false, nil
	}

	delete(s.stock[category], name)
	// Emptied categories do not persist.
	if len(s.stock[category]) == 0 {
		delete(s.stock, category)
	}

	if err := s.invRepo.Save(s.stock); err != nil {
		return false, err
	}
	return true, nil
}

func (s *inventoryService) IsAvailable(itemName string, recipes models.RecipeBook) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := recipes[itemName]
	if !ok {
		// No recipe: the item consumes no tracked ingredients.
		return true
	}
	for ingredient, amountNeeded := range recipe {
		_, level, found := s.findLevel(ingredient)
		if !found || level.Quantity < amountNeeded {
			return false
		}
	}
	return true
}

// Deduct is the check-then-commit core of the ledger. Phase 1 verifies every
// recipe line against current stock; only if all lines pass does phase 2
// apply the decrements and persist, once. A multi-ingredient recipe is never
// left partially deducted. The string result names the first insufficient or
// missing ingredient on failure.
func (s *inventoryService) Deduct(itemName string, orderedQty int, recipes models.RecipeBook) (bool, string, error) {
	if orderedQty <= 0 {
		return false, "", fmt.Errorf("%w: order quantity must be a positive number", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := recipes[itemName]
	if !ok {
		return true, "", nil
	}

	lines := make([]string, 0, len(recipe))
	for ingredient := range recipe {
		lines = append(lines, ingredient)
	}
	sort.Strings(lines)

	// Phase 1: verify every line before touching anything.
	for _, ingredient := range lines {
		totalNeeded := recipe[ingredient] * orderedQty
		_, level, found := s.findLevel(ingredient)
		if !found || level.Quantity < totalNeeded {
			utils.LogInfo("Deduction refused", map[string]interface{}{
				"item": itemName, "ingredient": ingredient, "needed": totalNeeded,
			})
			return false, ingredient, nil
		}
	}

	// Phase 2: all lines verified; apply and persist once.
	for _, ingredient := range lines {
		_, level, _ := s.findLevel(ingredient)
		level.Quantity -= recipe[ingredient] * orderedQty
	}
	if err := s.invRepo.Save(s.stock); err != nil {
		return false, "", err
	}
	return true, "", nil
}

func (s *inventoryService) Ingredients() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Ingredient
	for cat, items := range s.stock {
		for name, level := range items {
			out = append(out, models.Ingredient{
				Category: cat,
				Name:     name,
				Quantity: level.Quantity,
				Unit:     level.Unit,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *inventoryService) FindIngredient(name string) (string, models.StockLevel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, level, ok := s.findLevel(name)
	if !ok {
		return "", models.StockLevel{}, false
	}
	return cat, *level, true
}

func (s *inventoryService) HasCategory(category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.stock[category]
	return ok
}
