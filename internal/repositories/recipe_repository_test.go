package repositories

import (
	"os"
	"testing"

	"cafe_pos_backend/internal/models"
)

func TestRecipeLoadSeedsDefaultBook(t *testing.T) {
	path := tempPath(t, "recipes.txt")
	book, skipped, err := NewRecipeRepository(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(book) != 12 {
		t.Errorf("default book has %d recipes, want 12", len(book))
	}
	if book["Hot Coffee"]["Coffee Beans"] != 15 {
		t.Errorf("Hot Coffee beans = %d, want 15", book["Hot Coffee"]["Coffee Beans"])
	}
}

func TestRecipeSaveLoadRoundTrip(t *testing.T) {
	path := tempPath(t, "recipes.txt")
	repo := NewRecipeRepository(path)

	in := models.RecipeBook{
		"Espresso":  {"Coffee Beans": 18, "Cups": 1},
		"Tap Water": {},
	}
	if err := repo.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, skipped, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if out["Espresso"]["Coffee Beans"] != 18 || out["Espresso"]["Cups"] != 1 {
		t.Errorf("Espresso = %+v", out["Espresso"])
	}
	recipe, ok := out["Tap Water"]
	if !ok {
		t.Fatalf("empty recipe was dropped")
	}
	if len(recipe) != 0 {
		t.Errorf("Tap Water = %+v, want empty", recipe)
	}
}

func TestRecipeLoadDropsBadPairsAndCountsBadLines(t *testing.T) {
	path := tempPath(t, "recipes.txt")
	content := "Espresso|Coffee Beans=18;broken;Sugar=-5;Cups=1\n" +
		"no pipe in this line\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	book, skipped, err := NewRecipeRepository(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	espresso := book["Espresso"]
	if len(espresso) != 2 {
		t.Errorf("Espresso = %+v, want the two valid pairs only", espresso)
	}
	if espresso["Coffee Beans"] != 18 || espresso["Cups"] != 1 {
		t.Errorf("Espresso = %+v", espresso)
	}
}
