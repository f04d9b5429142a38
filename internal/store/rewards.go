package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/niaone/backend/internal/models"
)

// SetRewards replaces the reward list. Called once at seed time.
func (s *Store) SetRewards(rewards []models.Reward) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewards = append([]models.Reward(nil), rewards...)
}

// ListRewards returns the rewards in insertion order.
func (s *Store) ListRewards() []models.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reward(nil), s.rewards...)
}

// GetReward returns the reward with the given ID.
func (s *Store) GetReward(id int) (models.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rewards {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reward{}, ErrNotFound
}

// RedeemReward deducts cost from the account, prepends the activity entry,
// and stores the voucher in one critical section: no reader can observe the
// deduction without the voucher. It fails with ErrInsufficientPoints when
// the balance cannot cover cost and with ErrDuplicateCode when the voucher
// code is taken, leaving all state untouched either way. Returns the new
// balance.
func (s *Store) RedeemReward(accountID uuid.UUID, cost int, entry models.ActivityEntry, v models.Voucher) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.vouchers {
		if existing.Code == v.Code {
			return 0, ErrDuplicateCode
		}
	}
	for _, a := range s.accounts {
		if a.ID == accountID {
			if a.Balance < cost {
				return a.Balance, ErrInsufficientPoints
			}
			a.Balance -= cost
			s.prependActivityLocked(entry)
			s.vouchers = append(s.vouchers, v)
			return a.Balance, nil
		}
	}
	return 0, ErrNotFound
}

// GetVoucherByCode returns the voucher with the given code.
func (s *Store) GetVoucherByCode(code string) (models.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vouchers {
		if v.Code == code {
			return v, nil
		}
	}
	return models.Voucher{}, ErrNotFound
}

// FulfillVoucher marks the voucher fulfilled. Fulfilling twice fails with
// ErrAlreadyFulfilled.
func (s *Store) FulfillVoucher(code string, at time.Time) (models.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vouchers {
		if s.vouchers[i].Code != code {
			continue
		}
		if s.vouchers[i].Status == models.VoucherStatusFulfilled {
			return models.Voucher{}, ErrAlreadyFulfilled
		}
		s.vouchers[i].Status = models.VoucherStatusFulfilled
		s.vouchers[i].FulfilledAt = &at
		return s.vouchers[i], nil
	}
	return models.Voucher{}, ErrNotFound
}

// ListVouchersByAccount returns the account's vouchers, newest issued first.
func (s *Store) ListVouchersByAccount(accountID uuid.UUID) []models.Voucher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Voucher
	for i := len(s.vouchers) - 1; i >= 0; i-- {
		if s.vouchers[i].AccountID == accountID {
			out = append(out, s.vouchers[i])
		}
	}
	return out
}
