// Package orders handles resident checkout and staff fulfillment. Orders
// are cash-on-pickup: placing one does not touch the point balance; the
// resident shows the pickup code at the counter.
package orders

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/store"
)

var (
	// ErrEmptyOrder is returned when a checkout has no lines.
	ErrEmptyOrder = errors.New("order has no lines")
	// ErrBadQuantity is returned when a line quantity is below 1.
	ErrBadQuantity = errors.New("quantity must be at least 1")
)

// Line is one cart line in a checkout request.
type Line struct {
	ItemID int `json:"item_id"`
	Qty    int `json:"qty"`
}

type Service interface {
	Place(ctx context.Context, accountID uuid.UUID, accountName string, lines []Line) (*models.Order, error)
	ListAll(ctx context.Context) []*models.Order
	ListByAccount(ctx context.Context, accountID uuid.UUID) []*models.Order
	Fulfill(ctx context.Context, code string) (*models.Order, error)
}

type service struct {
	store *store.Store
}

func NewService(s *store.Store) *service {
	return &service{store: s}
}

var _ Service = (*service)(nil)

// Place resolves each line against the catalog, totals the order, and
// records it with a fresh pickup code. Unknown items fail the whole order.
func (s *service) Place(ctx context.Context, accountID uuid.UUID, accountName string, lines []Line) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	order := &models.Order{
		ID:          uuid.New(),
		AccountID:   accountID,
		AccountName: accountName,
		Status:      models.OrderStatusPlaced,
		PlacedAt:    time.Now().UTC(),
	}
	for _, l := range lines {
		if l.Qty < 1 {
			return nil, ErrBadQuantity
		}
		item, err := s.store.GetCatalogItem(l.ItemID)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", l.ItemID, err)
		}
		order.Lines = append(order.Lines, models.OrderLine{
			ItemID: item.ID,
			Name:   item.Name,
			Price:  item.Price,
			Qty:    l.Qty,
		})
		order.Total += item.Price * l.Qty
	}
	// Regenerate on a code collision; the store rejects duplicates.
	for attempt := 0; ; attempt++ {
		order.Code = newPickupCode()
		err := s.store.AddOrder(order)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrDuplicateCode) || attempt == 4 {
			return nil, err
		}
	}
	return order, nil
}

func (s *service) ListAll(ctx context.Context) []*models.Order {
	return s.store.ListOrders()
}

func (s *service) ListByAccount(ctx context.Context, accountID uuid.UUID) []*models.Order {
	return s.store.ListOrdersByAccount(accountID)
}

func (s *service) Fulfill(ctx context.Context, code string) (*models.Order, error) {
	return s.store.FulfillOrder(code, time.Now().UTC())
}

// newPickupCode returns a short code like NIA-3F9A2C for the order terminal.
func newPickupCode() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return "NIA-" + strings.ToUpper(hex.EncodeToString(b))
}
