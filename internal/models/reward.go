package models

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a perk redeemable for points.
type Reward struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Cost  int    `json:"cost"`
}

// Voucher statuses.
const (
	VoucherStatusPending   = "pending"
	VoucherStatusFulfilled = "fulfilled"
)

// Voucher is issued on a successful redemption. It stays pending until
// staff verify the code at the counter and mark it fulfilled.
type Voucher struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	AccountID   uuid.UUID  `json:"account_id"`
	RewardID    int        `json:"reward_id"`
	RewardName  string     `json:"reward_name"`
	Status      string     `json:"status"`
	IssuedAt    time.Time  `json:"issued_at"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
}
