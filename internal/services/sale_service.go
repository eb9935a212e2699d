package services

import (
	"fmt"
	"strings"
	"time"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"
	"cafe_pos_backend/internal/storage"

	"cafe_pos_backend/pkg/utils"
)

// SkippedLine reports one cart line refused at checkout, with the
// insufficient or missing ingredient when known.
type SkippedLine struct {
	Item       string
	Ingredient string
}

// CheckoutResult is everything the front end needs to render after a
// finalized order.
type CheckoutResult struct {
	Sales      []models.Sale
	Skipped    []SkippedLine
	GrandTotal float64
	Receipt    string
}

// --- SaleService Interface ---
//
// SaleService owns the sale ledger: strictly increasing ids recovered from
// the last durable record at startup, one PENDING line appended per sale,
// and the PENDING -> COMPLETED status flip driven by the kitchen.
type SaleService interface {
	// NextID is the id the next recorded sale will receive.
	NextID() int
	// Checkout deducts ingredients per cart line (all-or-nothing per line;
	// a refused line never blocks the others), records each successful line
	// as a PENDING sale, and appends a receipt block to the receipt file.
	Checkout(cart []models.CartItem, operator string, recipes models.RecipeBook) (*CheckoutResult, error)
	// MarkComplete flips one PENDING sale to COMPLETED by id.
	MarkComplete(id int) (bool, error)
	// PendingLines returns the raw ledger lines still awaiting preparation.
	PendingLines() ([]string, error)
}

// --- saleService Implementation ---
type saleService struct {
	saleRepo     repositories.SaleRepository
	inventory    InventoryService
	receiptsPath string
	glyph        string
	nextID       int
}

// NewSaleService recovers the next sale id from the ledger's last line.
// An absent, empty, or unparseable ledger starts the sequence at 1.
func NewSaleService(saleRepo repositories.SaleRepository, inventory InventoryService, receiptsPath, glyph string) SaleService {
	return &saleService{
		saleRepo:     saleRepo,
		inventory:    inventory,
		receiptsPath: receiptsPath,
		glyph:        glyph,
		nextID:       saleRepo.LastID() + 1,
	}
}

func (s *saleService) NextID() int {
	return s.nextID
}

func (s *saleService) Checkout(cart []models.CartItem, operator string, recipes models.RecipeBook) (*CheckoutResult, error) {
	result := &CheckoutResult{}
	now := time.Now()

	for _, item := range cart {
		ok, insufficient, err := s.inventory.Deduct(item.Name, item.Qty, recipes)
		if err != nil {
			return nil, fmt.Errorf("deducting ingredients for %s: %w", item.Name, err)
		}
		if !ok {
			// A refused line is a normal outcome; the rest of the order proceeds.
			result.Skipped = append(result.Skipped, SkippedLine{Item: item.Name, Ingredient: insufficient})
			continue
		}

		sale := models.Sale{
			ID:       s.nextID,
			ItemName: item.Name,
			Quantity: item.Qty,
			Total:    item.Total(),
			Date:     now,
			Cashier:  operator,
			Status:   models.SalePending,
		}
		if err := s.saleRepo.Append(&sale); err != nil {
			return nil, fmt.Errorf("recording sale: %w", err)
		}
		s.nextID++

		result.Sales = append(result.Sales, sale)
		result.GrandTotal += sale.Total

		utils.LogInfo("Sale recorded", map[string]interface{}{
			"sale_id": sale.ID, "item": sale.ItemName, "qty": sale.Quantity, "operator": operator,
		})
	}

	result.Receipt = s.buildReceipt(result.Sales, operator, now, result.GrandTotal)
	if len(result.Sales) > 0 {
		if err := storage.AppendText(s.receiptsPath, result.Receipt); err != nil {
			return nil, fmt.Errorf("saving receipt: %w", err)
		}
	}
	return result, nil
}

// buildReceipt renders the customer-facing receipt block appended to the
// receipt archive. Display formatting only; nothing parses this back.
func (s *saleService) buildReceipt(sales []models.Sale, operator string, at time.Time, grandTotal float64) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("==========================================\n")
	b.WriteString("                CAFE RECEIPT              \n")
	b.WriteString("==========================================\n")
	fmt.Fprintf(&b, "Date: %s\n", at.Format(repositories.SaleTimeLayout))
	fmt.Fprintf(&b, "Served By: %s\n", operator)
	b.WriteString("------------------------------------------\n")
	fmt.Fprintf(&b, "%-20s %5s %10s\n", "Item", "Qty", "Total")
	b.WriteString("------------------------------------------\n")

	for _, sale := range sales {
		fmt.Fprintf(&b, "%-20s %5d %10s\n", sale.ItemName, sale.Quantity, s.glyph+utils.FormatMoney(sale.Total))
	}

	b.WriteString("==========================================\n")
	label := "GRAND TOTAL:"
	value := s.glyph + utils.FormatMoney(grandTotal)
	padding := 32 - len(label) - len([]rune(value))
	if padding < 1 {
		padding = 1
	}
	fmt.Fprintf(&b, "%s%s%s\n", label, strings.Repeat(" ", padding), value)
	b.WriteString("==========================================\n")
	b.WriteString("         THANK YOU FOR YOUR ORDER!        \n")
	b.WriteString("==========================================\n\n")
	return b.String()
}

func (s *saleService) MarkComplete(id int) (bool, error) {
	found, err := s.saleRepo.MarkComplete(id)
	if err != nil {
		return false, err
	}
	if found {
		utils.LogInfo("Sale completed", map[string]interface{}{"sale_id": id})
	}
	return found, nil
}

func (s *saleService) PendingLines() ([]string, error) {
	lines, err := s.saleRepo.Lines()
	if err != nil {
		return nil, err
	}
	var pending []string
	tag := "[" + string(models.SalePending) + "]"
	for _, line := range lines {
		if strings.Contains(line, tag) {
			pending = append(pending, line)
		}
	}
	return pending, nil
}
