package repositories

import (
	"os"
	"testing"

	"cafe_pos_backend/internal/models"
)

func TestMenuLoadSeedsDefaultPriceList(t *testing.T) {
	menu, skipped, err := NewMenuRepository(tempPath(t, "menu.txt")).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(menu) != 12 {
		t.Errorf("default menu has %d items, want 12", len(menu))
	}
	if menu["Hot Coffee"] != 90 || menu["Brown Sugar Latte"] != 140 {
		t.Errorf("default prices wrong: %v / %v", menu["Hot Coffee"], menu["Brown Sugar Latte"])
	}
}

func TestMenuSaveLoadRoundTrip(t *testing.T) {
	path := tempPath(t, "menu.txt")
	repo := NewMenuRepository(path)

	in := models.Menu{"Espresso": 85, "Flat White": 125.5}
	if err := repo.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, _, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out["Espresso"] != 85 || out["Flat White"] != 125.5 {
		t.Errorf("menu = %+v", out)
	}
}

func TestMenuLoadSkipsNonPositivePrices(t *testing.T) {
	path := tempPath(t, "menu.txt")
	content := "Espresso|85\nFree Water|0\nMystery|-10\nBroken\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	menu, skipped, err := NewMenuRepository(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skipped != 3 {
		t.Errorf("skipped = %d, want 3", skipped)
	}
	if len(menu) != 1 || menu["Espresso"] != 85 {
		t.Errorf("menu = %+v", menu)
	}
}
