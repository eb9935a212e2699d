package models

import "time"

// SaleStatus is the fulfillment state of a recorded sale.
type SaleStatus string

const (
	// SalePending marks a sale awaiting preparation.
	SalePending SaleStatus = "PENDING"
	// SaleCompleted is terminal; no further transitions exist.
	SaleCompleted SaleStatus = "COMPLETED"
)

// Sale is one completed order line. IDs are strictly increasing integers,
// recovered from the last durable record at startup and never reused.
// All fields except Status are immutable once recorded.
type Sale struct {
	ID       int        `json:"id"`
	ItemName string     `json:"item_name"`
	Quantity int        `json:"quantity"`
	Total    float64    `json:"total"`
	Date     time.Time  `json:"date"`
	Cashier  string     `json:"cashier"`
	Status   SaleStatus `json:"status"`
}

// CartItem is one order line being assembled before checkout.
type CartItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Total is the line total for the cart entry.
func (c CartItem) Total() float64 {
	return c.Price * float64(c.Qty)
}
