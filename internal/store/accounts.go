package store

import (
	"github.com/google/uuid"

	"github.com/niaone/backend/internal/models"
)

// AddAccount appends a new account. Employee codes are unique across the
// account set (case-sensitive, like login).
func (s *Store) AddAccount(a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.EmployeeID == a.EmployeeID {
			return ErrDuplicateCode
		}
	}
	cp := *a
	s.accounts = append(s.accounts, &cp)
	return nil
}

// GetAccount returns a copy of the account with the given ID.
func (s *Store) GetAccount(id uuid.UUID) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// GetAccountByEmployeeID returns a copy of the first account whose employee
// code matches exactly. The copy carries the PIN hash for credential checks.
func (s *Store) GetAccountByEmployeeID(code string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.EmployeeID == code {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// ListAccountsByRole returns copies of matching accounts in insertion order.
func (s *Store) ListAccountsByRole(role string) []*models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Account
	for _, a := range s.accounts {
		if a.Role == role {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

// CountAccounts returns the total number of accounts.
func (s *Store) CountAccounts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// AdjustBalance applies delta to the account's balance and prepends the
// given activity entry, all under one lock so concurrent adjustments cannot
// interleave their read-modify-write. There is no balance floor: deductions
// may drive the balance negative. Returns the new balance.
func (s *Store) AdjustBalance(id uuid.UUID, delta int, entry models.ActivityEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			a.Balance += delta
			s.prependActivityLocked(entry)
			return a.Balance, nil
		}
	}
	return 0, ErrNotFound
}
