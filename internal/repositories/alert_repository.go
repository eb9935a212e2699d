package repositories

import (
	"fmt"
	"time"

	"cafe_pos_backend/internal/storage"
)

// AlertRepository is the append-only urgent-alert box the cashier writes to
// and the boss dashboard reads and clears.
type AlertRepository interface {
	Append(message string, at time.Time) error
	Lines() ([]string, error)
	Clear() error
}

type alertRepository struct {
	path string
}

// NewAlertRepository creates a new instance of AlertRepository.
func NewAlertRepository(path string) AlertRepository {
	return &alertRepository{path: path}
}

func (r *alertRepository) Append(message string, at time.Time) error {
	line := fmt.Sprintf("[CASHIER ALERT] %s: %s", at.Format(SaleTimeLayout), message)
	if err := storage.AppendLine(r.path, line); err != nil {
		return fmt.Errorf("%w: appending alert: %v", ErrStorageError, err)
	}
	return nil
}

func (r *alertRepository) Lines() ([]string, error) {
	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading alerts: %v", ErrStorageError, err)
	}
	return lines, nil
}

func (r *alertRepository) Clear() error {
	if err := storage.Truncate(r.path); err != nil {
		return fmt.Errorf("%w: clearing alerts: %v", ErrStorageError, err)
	}
	return nil
}
