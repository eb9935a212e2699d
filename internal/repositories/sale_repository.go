package repositories

import (
	"fmt"
	"strings"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/storage"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"

	"cafe_pos_backend/pkg/utils"
)

// SaleTimeLayout is the date-time rendering inside a sale line. It contains
// no '-' characters, so the " - " field separators stay unambiguous.
const SaleTimeLayout = "1/2/2006 3:04:05 PM"

// SaleRepository is the append-biased durable ledger of sales. Lines are
// appended once and never rewritten except to flip a status token.
type SaleRepository interface {
	// LastID recovers the id of the last persisted sale by scanning the
	// final line. An absent, empty, or malformed ledger yields 0 so the
	// caller starts at 1; recovery never fails the process.
	LastID() int
	// Append writes one sale line with status PENDING.
	Append(sale *models.Sale) error
	// MarkComplete rewrites the ledger, replacing the status token of the
	// first PENDING line whose id matches. Every other line passes through
	// byte-identical. Returns whether a match was found.
	MarkComplete(id int) (bool, error)
	// Lines exposes read-only iteration over the raw ledger for the report
	// generator and the kitchen display.
	Lines() ([]string, error)
}

type saleRepository struct {
	path  string
	glyph string
}

// NewSaleRepository creates a new instance of SaleRepository. glyph is the
// currency symbol embedded in (and parsed back out of) every line.
func NewSaleRepository(path, glyph string) SaleRepository {
	return &saleRepository{path: path, glyph: glyph}
}

// FormatSaleLine renders the exact durable shape:
//
//	Sale #<id> - <date> - <item> x<qty> = <glyph><total> (By: <operator>) | [<status>]
//
// Downstream report parsing depends on this shape; change both together.
func FormatSaleLine(sale *models.Sale, glyph string) string {
	return fmt.Sprintf("Sale #%d - %s - %s x%d = %s%s (By: %s) | [%s]",
		sale.ID,
		sale.Date.Format(SaleTimeLayout),
		sale.ItemName,
		sale.Quantity,
		glyph,
		utils.FormatAmount(sale.Total),
		sale.Cashier,
		sale.Status,
	)
}

// ExtractSaleID pulls the numeric id between '#' and the first " -".
// Returns 0, false when the line does not carry one.
func ExtractSaleID(line string) (int, bool) {
	start := strings.Index(line, "#")
	end := strings.Index(line, " -")
	if start < 0 || end <= start+1 {
		return 0, false
	}
	id, err := cast.ToIntE(strings.TrimSpace(line[start+1 : end]))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseSaleLine recovers the structured fields of one ledger line. Lines
// that do not parse are reported false and skipped by callers.
func ParseSaleLine(line, glyph string) (*models.Sale, bool) {
	id, ok := ExtractSaleID(line)
	if !ok {
		return nil, false
	}

	segments := strings.SplitN(line, " - ", 3)
	if len(segments) < 3 {
		return nil, false
	}

	date, err := dateparse.ParseLocal(strings.TrimSpace(segments[1]))
	if err != nil {
		return nil, false
	}

	rest := segments[2]

	eqIdx := strings.Index(rest, " = ")
	if eqIdx < 0 {
		return nil, false
	}
	xIdx := strings.LastIndex(rest[:eqIdx], " x")
	if xIdx < 0 {
		return nil, false
	}
	item := strings.TrimSpace(rest[:xIdx])
	qty, err := cast.ToIntE(strings.TrimSpace(rest[xIdx+2 : eqIdx]))
	if err != nil || qty <= 0 {
		return nil, false
	}

	glyphIdx := strings.Index(rest, glyph)
	if glyphIdx < 0 {
		return nil, false
	}
	total, ok := utils.LeadingAmount(rest[glyphIdx+len(glyph):])
	if !ok {
		return nil, false
	}

	cashier := ""
	if byIdx := strings.Index(rest, "(By: "); byIdx >= 0 {
		if closeIdx := strings.Index(rest[byIdx:], ")"); closeIdx >= 0 {
			cashier = rest[byIdx+len("(By: ") : byIdx+closeIdx]
		}
	}

	status := models.SalePending
	if strings.Contains(rest, "["+string(models.SaleCompleted)+"]") {
		status = models.SaleCompleted
	}

	return &models.Sale{
		ID:       id,
		ItemName: item,
		Quantity: qty,
		Total:    total,
		Date:     date,
		Cashier:  cashier,
		Status:   status,
	}, true
}

func (r *saleRepository) LastID() int {
	lines, err := storage.ReadLines(r.path)
	if err != nil || len(lines) == 0 {
		return 0
	}
	last := lines[len(lines)-1]
	id, ok := ExtractSaleID(last)
	if !ok {
		return 0
	}
	return id
}

func (r *saleRepository) Append(sale *models.Sale) error {
	if err := storage.AppendLine(r.path, FormatSaleLine(sale, r.glyph)); err != nil {
		return fmt.Errorf("%w: appending sale record: %v", ErrStorageError, err)
	}
	return nil
}

func (r *saleRepository) MarkComplete(id int) (bool, error) {
	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return false, fmt.Errorf("%w: reading sale ledger: %v", ErrStorageError, err)
	}

	pendingTag := "[" + string(models.SalePending) + "]"
	completedTag := "[" + string(models.SaleCompleted) + "]"

	found := false
	updated := make([]string, 0, len(lines))
	for _, line := range lines {
		if !found {
			if lineID, ok := ExtractSaleID(line); ok && lineID == id && strings.Contains(line, pendingTag) {
				updated = append(updated, strings.Replace(line, pendingTag, completedTag, 1))
				found = true
				continue
			}
		}
		updated = append(updated, line)
	}

	if !found {
		return false, nil
	}
	if err := storage.WriteLines(r.path, updated); err != nil {
		return false, fmt.Errorf("%w: rewriting sale ledger: %v", ErrStorageError, err)
	}
	return true, nil
}

func (r *saleRepository) Lines() ([]string, error) {
	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sale ledger: %v", ErrStorageError, err)
	}
	return lines, nil
}
