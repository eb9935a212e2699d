package repositories

import (
	"fmt"
	"sort"
	"strings"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/storage"

	"github.com/spf13/cast"
)

// RecipeRepository defines the durable-record operations for the recipe catalog.
type RecipeRepository interface {
	// Load reads the full catalog, seeding the default recipes when the file
	// is absent or empty. The int result counts skipped malformed lines.
	Load() (models.RecipeBook, int, error)
	// Save rewrites the whole catalog. Updates never append.
	Save(book models.RecipeBook) error
}

type recipeRepository struct {
	path string
}

// NewRecipeRepository creates a new instance of RecipeRepository.
func NewRecipeRepository(path string) RecipeRepository {
	return &recipeRepository{path: path}
}

// DefaultRecipeBook matches the default menu and the default ingredient
// catalog; amounts are per one unit sold.
func DefaultRecipeBook() models.RecipeBook {
	return models.RecipeBook{
		"Hot Coffee":            {"Coffee Beans": 15, "Cups": 1, "Lids": 1},
		"Iced Coffee":           {"Coffee Beans": 15, "Sugar": 10, "Cups": 1, "Lids": 1, "Straws": 1},
		"Cafe Latte":            {"Coffee Beans": 20, "Milk": 150, "Cups": 1, "Lids": 1},
		"Iced Latte":            {"Coffee Beans": 20, "Milk": 120, "Sugar": 10, "Cups": 1, "Lids": 1, "Straws": 1},
		"Brown Sugar Latte":     {"Coffee Beans": 20, "Milk": 150, "Sugar": 25, "Cups": 1, "Lids": 1, "Straws": 1},
		"Sweetened Milk Coffee": {"Coffee Beans": 15, "Milk": 50, "Sugar": 15, "Cups": 1, "Lids": 1},
		"Hot Matcha Latte":      {"Matcha Powder": 15, "Milk": 200, "Sugar": 10, "Cups": 1, "Lids": 1},
		"Iced Matcha Latte":     {"Matcha Powder": 15, "Milk": 150, "Sugar": 15, "Cups": 1, "Lids": 1, "Straws": 1},
		"Matcha Milk":           {"Matcha Powder": 10, "Milk": 250, "Cups": 1, "Lids": 1, "Straws": 1},
		"Hot Chocolate":         {"Cocoa Powder": 30, "Milk": 200, "Sugar": 15, "Cups": 1, "Lids": 1},
		"Iced Chocolate":        {"Cocoa Powder": 30, "Milk": 150, "Sugar": 15, "Cups": 1, "Lids": 1, "Straws": 1},
		"Chocolate Milk":        {"Cocoa Powder": 15, "Milk": 250, "Sugar": 10, "Cups": 1, "Lids": 1, "Straws": 1},
	}
}

func (r *recipeRepository) Load() (models.RecipeBook, int, error) {
	if storage.IsMissingOrEmpty(r.path) {
		book := DefaultRecipeBook()
		if err := r.Save(book); err != nil {
			return nil, 0, fmt.Errorf("seeding default recipes: %w", err)
		}
		return book, 0, nil
	}

	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: loading recipes: %v", ErrStorageError, err)
	}

	book := models.RecipeBook{}
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, recipe, ok := parseRecipeRecord(line)
		if !ok {
			skipped++
			continue
		}
		book[name] = recipe
	}
	return book, skipped, nil
}

// parseRecipeRecord reads `itemName|ing1=amt1;ing2=amt2;...`. An empty
// ingredient list (`itemName|`) is a valid, always-available recipe.
// Malformed ingredient pairs are dropped; amounts must be positive.
func parseRecipeRecord(line string) (string, models.Recipe, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return "", nil, false
	}
	recipe := models.Recipe{}
	for _, raw := range strings.Split(parts[1], ";") {
		if raw == "" {
			continue
		}
		pair := strings.Split(raw, "=")
		if len(pair) != 2 {
			continue
		}
		amt, err := cast.ToIntE(strings.TrimSpace(pair[1]))
		if err != nil || amt <= 0 {
			continue
		}
		recipe[pair[0]] = amt
	}
	return parts[0], recipe, true
}

func (r *recipeRepository) Save(book models.RecipeBook) error {
	names := make([]string, 0, len(book))
	for name := range book {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		recipe := book[name]
		ings := make([]string, 0, len(recipe))
		for ing := range recipe {
			ings = append(ings, ing)
		}
		sort.Strings(ings)

		pairs := make([]string, 0, len(ings))
		for _, ing := range ings {
			pairs = append(pairs, fmt.Sprintf("%s=%d", ing, recipe[ing]))
		}
		lines = append(lines, name+"|"+strings.Join(pairs, ";"))
	}

	if err := storage.WriteLines(r.path, lines); err != nil {
		return fmt.Errorf("%w: saving recipes: %v", ErrStorageError, err)
	}
	return nil
}
