package repositories

import (
	"fmt"
	"strings"
	"time"

	"cafe_pos_backend/internal/storage"

	"cafe_pos_backend/pkg/utils"
)

// ExpenseRepository is the append-only cost log fed by restocking. Lines are
// free text with an embedded timestamp and currency amount; only the
// aggregate-totals report consumes them.
type ExpenseRepository interface {
	// AppendRestock records one restock cost entry.
	AppendRestock(item string, cost float64, at time.Time) error
	// Lines exposes read-only iteration for the totals report.
	Lines() ([]string, error)
	// Total sums every parseable currency amount in the log.
	Total() (float64, error)
}

type expenseRepository struct {
	path  string
	glyph string
}

// NewExpenseRepository creates a new instance of ExpenseRepository.
func NewExpenseRepository(path, glyph string) ExpenseRepository {
	return &expenseRepository{path: path, glyph: glyph}
}

func (r *expenseRepository) AppendRestock(item string, cost float64, at time.Time) error {
	line := fmt.Sprintf("%s | Restock: %s | %s%s",
		at.Format(SaleTimeLayout), item, r.glyph, utils.FormatMoney(cost))
	if err := storage.AppendLine(r.path, line); err != nil {
		return fmt.Errorf("%w: appending expense record: %v", ErrStorageError, err)
	}
	return nil
}

func (r *expenseRepository) Lines() ([]string, error) {
	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading expense log: %v", ErrStorageError, err)
	}
	return lines, nil
}

func (r *expenseRepository) Total() (float64, error) {
	lines, err := r.Lines()
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, line := range lines {
		idx := strings.Index(line, r.glyph)
		if idx < 0 {
			continue
		}
		amount, ok := utils.LeadingAmount(strings.TrimSpace(line[idx+len(r.glyph):]))
		if !ok {
			continue
		}
		total += amount
	}
	return total, nil
}
