package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/niaone/backend/internal/models"
)

// AddOrder appends a placed order. Pickup codes are unique across orders;
// a taken code fails with ErrDuplicateCode so the caller can regenerate.
func (s *Store) AddOrder(o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.Code == o.Code {
			return ErrDuplicateCode
		}
	}
	cp := *o
	cp.Lines = append([]models.OrderLine(nil), o.Lines...)
	s.orders = append(s.orders, &cp)
	return nil
}

// ListOrders returns copies of all orders, newest placed first.
func (s *Store) ListOrders() []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, copyOrder(s.orders[i]))
	}
	return out
}

// ListOrdersByAccount returns copies of the account's orders, newest first.
func (s *Store) ListOrdersByAccount(accountID uuid.UUID) []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].AccountID == accountID {
			out = append(out, copyOrder(s.orders[i]))
		}
	}
	return out
}

// GetOrderByCode returns a copy of the order with the given pickup code.
func (s *Store) GetOrderByCode(code string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.Code == code {
			return copyOrder(o), nil
		}
	}
	return nil, ErrNotFound
}

// FulfillOrder marks the order fulfilled. Fulfilling twice fails with
// ErrAlreadyFulfilled.
func (s *Store) FulfillOrder(code string, at time.Time) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.Code != code {
			continue
		}
		if o.Status == models.OrderStatusFulfilled {
			return nil, ErrAlreadyFulfilled
		}
		o.Status = models.OrderStatusFulfilled
		o.FulfilledAt = &at
		return copyOrder(o), nil
	}
	return nil, ErrNotFound
}

// CountOrdersByStatus returns the number of orders in the given status.
func (s *Store) CountOrdersByStatus(status string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, o := range s.orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

func copyOrder(o *models.Order) *models.Order {
	cp := *o
	cp.Lines = append([]models.OrderLine(nil), o.Lines...)
	if o.FulfilledAt != nil {
		t := *o.FulfilledAt
		cp.FulfilledAt = &t
	}
	return &cp
}
