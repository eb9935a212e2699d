package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cafe_pos_backend/internal/models"
	"cafe_pos_backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"

	"cafe_pos_backend/pkg/utils"
)

// --- Custom Service Errors for Auth ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAccountNotFound    = errors.New("account not found")
)

// validRoles are the roles an account may be registered with.
var validRoles = map[string]bool{
	"boss": true, "owner": true, "cashier": true, "barista": true, "staff": true,
}

// --- AuthService Interface ---
//
// AuthService keeps the operator accounts. The ledger itself never depends
// on identity beyond the operator-name string attached to a sale.
type AuthService interface {
	// Login verifies credentials against the required role. The role check
	// passes on exact match or when the account holds a boss/owner role.
	Login(username, password, requiredRole string) (*models.Account, bool)
	Register(role, username, password string, salary float64) error
	RemoveStaff(username string) (bool, error)
	StaffAccounts() []models.Account
	TotalStaffSalary() float64
}

// --- authService Implementation ---
type authService struct {
	accounts    map[string]models.Account
	accountRepo repositories.AccountRepository
}

// NewAuthService loads the account map, seeding the configured boss account
// when the backing file is absent or empty.
func NewAuthService(accountRepo repositories.AccountRepository) (AuthService, error) {
	accounts, skipped, err := accountRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if skipped > 0 {
		utils.LogWarn("Skipped malformed account records", map[string]interface{}{"count": skipped})
	}
	return &authService{accounts: accounts, accountRepo: accountRepo}, nil
}

// verifyPassword compares against a bcrypt hash. Stored values that are not
// bcrypt hashes come from legacy plaintext account files and are compared
// directly.
func verifyPassword(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == strings.TrimSpace(supplied)
}

// roleSatisfies is the single role predicate: exact match, or boss/owner
// escalation.
func roleSatisfies(acc models.Account, requiredRole string) bool {
	return strings.EqualFold(strings.TrimSpace(acc.Role), requiredRole) || acc.IsPrivileged()
}

func (s *authService) Login(username, password, requiredRole string) (*models.Account, bool) {
	acc, ok := s.accounts[strings.TrimSpace(username)]
	if !ok {
		return nil, false
	}
	if !verifyPassword(acc.Password, password) || !roleSatisfies(acc, requiredRole) {
		return nil, false
	}
	return &acc, true
}

func (s *authService) Register(role, username, password string, salary float64) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if !validRoles[role] {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	username = strings.TrimSpace(username)
	if utils.IsEmpty(username) || utils.IsEmpty(password) {
		return fmt.Errorf("%w: username and password cannot be empty", ErrValidation)
	}
	if _, ok := s.accounts[username]; ok {
		return fmt.Errorf("%w: %s", ErrUsernameExists, username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	acc := models.Account{Role: role, Username: username, Password: string(hashed)}
	if !acc.IsPrivileged() {
		acc.Salary = salary
	}

	if err := s.accountRepo.Append(acc); err != nil {
		return err
	}
	s.accounts[username] = acc

	utils.LogInfo("Account registered", map[string]interface{}{"username": username, "role": role})
	return nil
}

func (s *authService) RemoveStaff(username string) (bool, error) {
	acc, ok := s.accounts[username]
	if !ok || acc.IsPrivileged() {
		return false, nil
	}

	delete(s.accounts, username)
	if err := s.accountRepo.SaveAll(s.accounts); err != nil {
		return false, err
	}

	utils.LogInfo("Staff removed", map[string]interface{}{"username": username})
	return true, nil
}

func (s *authService) StaffAccounts() []models.Account {
	var staff []models.Account
	for _, acc := range s.accounts {
		if !acc.IsPrivileged() {
			staff = append(staff, acc)
		}
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].Username < staff[j].Username })
	return staff
}

func (s *authService) TotalStaffSalary() float64 {
	total := 0.0
	for _, acc := range s.accounts {
		if acc.IsStaff() {
			total += acc.Salary
		}
	}
	return total
}
