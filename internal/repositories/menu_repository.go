package repositories

import (
	"fmt"
	"sort"
	"strings"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/storage"

	"github.com/spf13/cast"
)

// MenuRepository defines the durable-record operations for the price list.
type MenuRepository interface {
	// Load reads the menu, seeding the default café menu when the file is
	// absent or empty. The int result counts skipped malformed lines.
	Load() (models.Menu, int, error)
	// Save rewrites the whole menu.
	Save(menu models.Menu) error
}

type menuRepository struct {
	path string
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(path string) MenuRepository {
	return &menuRepository{path: path}
}

// DefaultMenu is the fixed starting price list written on first run.
func DefaultMenu() models.Menu {
	return models.Menu{
		"Hot Coffee":            90,
		"Iced Coffee":           100,
		"Cafe Latte":            120,
		"Iced Latte":            130,
		"Brown Sugar Latte":     140,
		"Sweetened Milk Coffee": 110,
		"Hot Matcha Latte":      130,
		"Iced Matcha Latte":     140,
		"Matcha Milk":           120,
		"Hot Chocolate":         110,
		"Iced Chocolate":        120,
		"Chocolate Milk":        100,
	}
}

func (r *menuRepository) Load() (models.Menu, int, error) {
	if storage.IsMissingOrEmpty(r.path) {
		menu := DefaultMenu()
		if err := r.Save(menu); err != nil {
			return nil, 0, fmt.Errorf("seeding default menu: %w", err)
		}
		return menu, 0, nil
	}

	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: loading menu: %v", ErrStorageError, err)
	}

	menu := models.Menu{}
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			skipped++
			continue
		}
		price, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
		if err != nil || price <= 0 {
			skipped++
			continue
		}
		menu[parts[0]] = price
	}
	return menu, skipped, nil
}

func (r *menuRepository) Save(menu models.Menu) error {
	names := make([]string, 0, len(menu))
	for name := range menu {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s|%s", name, cast.ToString(menu[name])))
	}

	if err := storage.WriteLines(r.path, lines); err != nil {
		return fmt.Errorf("%w: saving menu: %v", ErrStorageError, err)
	}
	return nil
}
