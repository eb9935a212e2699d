package models

// MenuItem is one sellable entry on the price list.
type MenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Menu maps item name -> price. Names are unique; recipes reference items
// by the same name.
type Menu map[string]float64
