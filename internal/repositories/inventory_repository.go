package repositories

import (
	"fmt"
	"sort"
	"strings"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/storage"

	"github.com/spf13/cast"
)

// InventoryRepository defines the durable-record operations for ingredient stock.
type InventoryRepository interface {
	// Load reads the full store. An absent or empty file seeds the default
	// catalog and persists it immediately. The int result is the number of
	// malformed lines that were skipped.
	Load() (models.Stock, int, error)
	// Save rewrites the whole store in stable sorted order.
	Save(stock models.Stock) error
}

type inventoryRepository struct {
	path string
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(path string) InventoryRepository {
	return &inventoryRepository{path: path}
}

// DefaultStock is the fixed starting catalog written on first run:
// three categories, eight ingredients.
func DefaultStock() models.Stock {
	return models.Stock{
		"Raw Materials": {
			"Coffee Beans":  {Quantity: 1000, Unit: "grams"},
			"Matcha Powder": {Quantity: 1000, Unit: "grams"},
			"Cocoa Powder":  {Quantity: 1000, Unit: "grams"},
			"Sugar":         {Quantity: 5000, Unit: "grams"},
		},
		"Dairy": {
			"Milk": {Quantity: 5000, Unit: "ml"},
		},
		"Packaging": {
			"Cups":   {Quantity: 500, Unit: "pieces"},
			"Lids":   {Quantity: 500, Unit: "pieces"},
			"Straws": {Quantity: 500, Unit: "pieces"},
		},
	}
}

func (r *inventoryRepository) Load() (models.Stock, int, error) {
	if storage.IsMissingOrEmpty(r.path) {
		stock := DefaultStock()
		if err := r.Save(stock); err != nil {
			return nil, 0, fmt.Errorf("seeding default inventory: %w", err)
		}
		return stock, 0, nil
	}

	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: loading inventory: %v", ErrStorageError, err)
	}

	stock := models.Stock{}
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ing, ok := parseIngredientRecord(line)
		if !ok {
			skipped++
			continue
		}
		if stock[ing.Category] == nil {
			stock[ing.Category] = map[string]*models.StockLevel{}
		}
		stock[ing.Category][ing.Name] = &models.StockLevel{Quantity: ing.Quantity, Unit: ing.Unit}
	}
	return stock, skipped, nil
}

// parseIngredientRecord accepts the 4-field form category|name|quantity|unit
// and the legacy 3-field form category|name|quantity (unit defaults to pieces).
func parseIngredientRecord(line string) (models.Ingredient, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 && len(parts) != 4 {
		return models.Ingredient{}, false
	}
	qty, err := cast.ToIntE(strings.TrimSpace(parts[2]))
	if err != nil || qty < 0 {
		return models.Ingredient{}, false
	}
	unit := "pieces"
	if len(parts) == 4 {
		unit = parts[3]
	}
	return models.Ingredient{
		Category: parts[0],
		Name:     parts[1],
		Quantity: qty,
		Unit:     unit,
	}, true
}

func (r *inventoryRepository) Save(stock models.Stock) error {
	categories := make([]string, 0, len(stock))
	for cat := range stock {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var lines []string
	for _, cat := range categories {
		names := make([]string, 0, len(stock[cat]))
		for name := range stock[cat] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			level := stock[cat][name]
			lines = append(lines, fmt.Sprintf("%s|%s|%d|%s", cat, name, level.Quantity, level.Unit))
		}
	}

	if err := storage.WriteLines(r.path, lines); err != nil {
		return fmt.Errorf("%w: saving inventory: %v", ErrStorageError, err)
	}
	return nil
}
