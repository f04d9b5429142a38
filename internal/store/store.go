// Package store owns all process-local ledger state: accounts, catalog,
// activity log, orders, rewards, and vouchers. One write lock serializes
// mutations; reads may proceed concurrently. Nothing is persisted.
package store

import (
	"errors"
	"sync"

	"github.com/niaone/backend/internal/models"
)

var (
	// ErrNotFound is returned when a requested account, order, or reward does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateCode is returned when a new account, order, or voucher
	// reuses a code that is already taken.
	ErrDuplicateCode = errors.New("code already in use")
	// ErrInsufficientPoints is returned when a deduction with a floor would overdraw the balance.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrAlreadyFulfilled is returned when fulfilling an order or voucher a second time.
	ErrAlreadyFulfilled = errors.New("already fulfilled")
)

// ActivityCap bounds the retained activity log. Appending past the cap
// evicts the oldest entries.
const ActivityCap = 500

type Store struct {
	mu       sync.RWMutex
	accounts []*models.Account
	catalog  []models.CatalogItem
	activity []models.ActivityEntry // newest first
	orders   []*models.Order
	rewards  []models.Reward
	vouchers []models.Voucher
}

func New() *Store {
	return &Store{}
}
