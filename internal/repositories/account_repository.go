package repositories

import (
	"fmt"
	"sort"
	"strings"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/storage"

	"github.com/spf13/cast"
)

// AccountRepository defines the durable-record operations for operator accounts.
type AccountRepository interface {
	// Load reads every account keyed by username, seeding the configured
	// boss account when the file is absent or empty. The int result counts
	// skipped malformed lines.
	Load() (map[string]models.Account, int, error)
	// Append adds one account record without touching existing lines.
	Append(acc models.Account) error
	// SaveAll rewrites the whole file, used when removing staff.
	SaveAll(accounts map[string]models.Account) error
}

type accountRepository struct {
	path string
	seed models.Account
}

// NewAccountRepository creates a new instance of AccountRepository. seed is
// written (as the sole record) when the backing file is absent or empty;
// its Password field must already be hashed.
func NewAccountRepository(path string, seed models.Account) AccountRepository {
	return &accountRepository{path: path, seed: seed}
}

// formatAccountRecord renders `role|username|password` for privileged roles
// and `role|username|password|salary` for salaried staff.
func formatAccountRecord(acc models.Account) string {
	if acc.IsPrivileged() {
		return fmt.Sprintf("%s|%s|%s", acc.Role, acc.Username, acc.Password)
	}
	return fmt.Sprintf("%s|%s|%s|%s", acc.Role, acc.Username, acc.Password, cast.ToString(acc.Salary))
}

func (r *accountRepository) Load() (map[string]models.Account, int, error) {
	if storage.IsMissingOrEmpty(r.path) {
		if err := storage.WriteLines(r.path, []string{formatAccountRecord(r.seed)}); err != nil {
			return nil, 0, fmt.Errorf("seeding default account: %w", err)
		}
		return map[string]models.Account{r.seed.Username: r.seed}, 0, nil
	}

	lines, err := storage.ReadLines(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: loading accounts: %v", ErrStorageError, err)
	}

	accounts := map[string]models.Account{}
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			skipped++
			continue
		}
		acc := models.Account{
			Role:     strings.TrimSpace(parts[0]),
			Username: strings.TrimSpace(parts[1]),
			Password: strings.TrimSpace(parts[2]),
		}
		if len(parts) >= 4 {
			if salary, err := cast.ToFloat64E(strings.TrimSpace(parts[3])); err == nil {
				acc.Salary = salary
			}
		}
		accounts[acc.Username] = acc
	}
	return accounts, skipped, nil
}

func (r *accountRepository) Append(acc models.Account) error {
	if err := storage.AppendLine(r.path, formatAccountRecord(acc)); err != nil {
		return fmt.Errorf("%w: appending account record: %v", ErrStorageError, err)
	}
	return nil
}

func (r *accountRepository) SaveAll(accounts map[string]models.Account) error {
	usernames := make([]string, 0, len(accounts))
	for username := range accounts {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	var lines []string
	for _, username := range usernames {
		lines = append(lines, formatAccountRecord(accounts[username]))
	}

	if err := storage.WriteLines(r.path, lines); err != nil {
		return fmt.Errorf("%w: saving accounts: %v", ErrStorageError, err)
	}
	return nil
}
