package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusFulfilled = "fulfilled"
)

type OrderLine struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Qty    int    `json:"qty"`
}

// Order is a resident checkout. Payment is cash-on-pickup: the resident
// shows the pickup code at the counter and staff fulfill from the terminal.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	Code        string      `json:"code"`
	AccountID   uuid.UUID   `json:"account_id"`
	AccountName string      `json:"account_name"`
	Lines       []OrderLine `json:"lines"`
	Total       int         `json:"total"`
	Status      string      `json:"status"`
	PlacedAt    time.Time   `json:"placed_at"`
	FulfilledAt *time.Time  `json:"fulfilled_at,omitempty"`
}
