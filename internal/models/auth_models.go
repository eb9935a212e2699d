package models

import "strings"

// Account represents one operator login. Password holds a bcrypt hash for
// accounts created by this system; legacy files with plaintext passwords
// are still accepted at the comparison site.
type Account struct {
	Role     string  `json:"role"`
	Username string  `json:"username"`
	Password string  `json:"-"` // never rendered
	Salary   float64 `json:"salary,omitempty"`
}

// IsPrivileged reports whether the account holds an owner-level role.
// Privileged roles satisfy any required-role check (escalation).
func (a Account) IsPrivileged() bool {
	role := strings.ToLower(strings.TrimSpace(a.Role))
	return role == "boss" || role == "owner"
}

// IsStaff reports whether the account is salaried staff, counted into the
// dashboard salary total.
func (a Account) IsStaff() bool {
	role := strings.ToLower(strings.TrimSpace(a.Role))
	return role == "cashier" || role == "barista" || role == "staff"
}

// Credentials for a login prompt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
