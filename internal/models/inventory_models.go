package models

// StockLevel holds the tracked quantity and display unit of one ingredient.
// Quantity is never negative; every mutation path validates before writing.
type StockLevel struct {
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"` // e.g. grams, ml, pieces
}

// Ingredient is the flattened (category, name) view of a stock entry, used
// for listings and durable records.
type Ingredient struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// Stock maps category -> ingredient name -> level. Categories with zero
// ingredients are removed rather than persisted.
type Stock map[string]map[string]*StockLevel

// Recipe maps ingredient name -> amount consumed per one unit sold.
// Ingredients are referenced by name only; lookup scans all categories.
type Recipe map[string]int

// RecipeBook maps menu item name -> its recipe. An absent entry means the
// item consumes no tracked ingredients.
type RecipeBook map[string]Recipe
