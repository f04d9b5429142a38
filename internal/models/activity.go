package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry records one point adjustment. The log is append-only and
// kept newest-first.
type ActivityEntry struct {
	ID          uuid.UUID `json:"id"`
	At          time.Time `json:"at"`
	AccountID   uuid.UUID `json:"account_id"`
	AccountName string    `json:"account_name"`
	ActionCode  string    `json:"action_code"`
	Points      int       `json:"points"`
	Note        string    `json:"note,omitempty"`
}
