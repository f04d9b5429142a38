package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles. Residents earn and spend points; staff (EAEs) run the
// manual ledger and the order terminal.
const (
	RoleResident = "resident"
	RoleStaff    = "staff"
)

type Account struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	EmployeeID string    `json:"employee_id"`
	Role       string    `json:"role"`
	Balance    int       `json:"balance"`
	Nest       string    `json:"nest,omitempty"`
	PINHash    string    `json:"-"`
	JoinedAt   time.Time `json:"joined_at"`
}
