package repositories

import (
	"os"
	"strings"
	"testing"

	"cafe_pos_backend/internal/models"
)

func TestAccountLoadSeedsBossWhenFileMissing(t *testing.T) {
	path := tempPath(t, "accounts.txt")
	seed := models.Account{Role: "boss", Username: "admin", Password: "hashed-secret"}

	accounts, skipped, err := NewAccountRepository(path, seed).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	acc, ok := accounts["admin"]
	if !ok {
		t.Fatalf("seed account missing")
	}
	if acc.Role != "boss" || acc.Password != "hashed-secret" {
		t.Errorf("seed = %+v", acc)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("seed file was not written: %v", err)
	}
	if strings.TrimSpace(string(data)) != "boss|admin|hashed-secret" {
		t.Errorf("seed record = %q", strings.TrimSpace(string(data)))
	}
}

func TestAccountRecordShapesByRole(t *testing.T) {
	boss := models.Account{Role: "owner", Username: "maria", Password: "h"}
	staff := models.Account{Role: "cashier", Username: "jo", Password: "h", Salary: 15000}

	if got := formatAccountRecord(boss); got != "owner|maria|h" {
		t.Errorf("privileged record = %q", got)
	}
	if got := formatAccountRecord(staff); got != "cashier|jo|h|15000" {
		t.Errorf("staff record = %q", got)
	}
}

func TestAccountAppendAndReload(t *testing.T) {
	path := tempPath(t, "accounts.txt")
	seed := models.Account{Role: "boss", Username: "admin", Password: "h"}
	repo := NewAccountRepository(path, seed)

	if _, _, err := repo.Load(); err != nil {
		t.Fatalf("initial load: %v", err)
	}
	staff := models.Account{Role: "barista", Username: "kim", Password: "h2", Salary: 12500.5}
	if err := repo.Append(staff); err != nil {
		t.Fatalf("append: %v", err)
	}

	accounts, skipped, err := repo.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(accounts))
	}
	kim := accounts["kim"]
	if kim.Role != "barista" || kim.Salary != 12500.5 {
		t.Errorf("kim = %+v", kim)
	}
}

func TestAccountLoadSkipsShortRecords(t *testing.T) {
	path := tempPath(t, "accounts.txt")
	content := "boss|admin|h\nbroken|line\ncashier|jo|h|9000\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	accounts, skipped, err := NewAccountRepository(path, models.Account{}).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(accounts) != 2 {
		t.Errorf("got %d accounts, want 2", len(accounts))
	}
}
