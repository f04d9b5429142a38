// Package rewards lets residents spend points on perks. A redemption
// deducts the reward cost, records a REWARD_REDEEMED activity entry, and
// issues a pending voucher in one critical section; staff verify and
// fulfill vouchers at the counter.
package rewards

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/store"
)

// RedemptionResult is returned by a successful redemption.
type RedemptionResult struct {
	Voucher    models.Voucher `json:"voucher"`
	NewBalance int            `json:"new_balance"`
}

type Service interface {
	List(ctx context.Context) []models.Reward
	Redeem(ctx context.Context, accountID uuid.UUID, rewardID int) (*RedemptionResult, error)
	VouchersByAccount(ctx context.Context, accountID uuid.UUID) []models.Voucher
	Lookup(ctx context.Context, code string) (models.Voucher, error)
	Fulfill(ctx context.Context, code string) (models.Voucher, error)
}

type service struct {
	store *store.Store
}

func NewService(s *store.Store) *service {
	return &service{store: s}
}

var _ Service = (*service)(nil)

func (s *service) List(ctx context.Context) []models.Reward {
	return s.store.ListRewards()
}

// Redeem checks affordability and deducts the cost. Unlike manual ledger
// deductions, redemptions have a floor: a resident cannot spend points they
// do not have.
func (s *service) Redeem(ctx context.Context, accountID uuid.UUID, rewardID int) (*RedemptionResult, error) {
	reward, err := s.store.GetReward(rewardID)
	if err != nil {
		return nil, err
	}
	acc, err := s.store.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	entry := models.ActivityEntry{
		ID:          uuid.New(),
		At:          time.Now().UTC(),
		AccountID:   acc.ID,
		AccountName: acc.Name,
		ActionCode:  models.ActionRewardRedeemed,
		Points:      -reward.Cost,
		Note:        reward.Name,
	}
	// Regenerate on a code collision; the store rejects duplicates.
	var (
		voucher    models.Voucher
		newBalance int
	)
	for attempt := 0; ; attempt++ {
		voucher = models.Voucher{
			ID:         uuid.New(),
			Code:       newVoucherCode(),
			AccountID:  acc.ID,
			RewardID:   reward.ID,
			RewardName: reward.Name,
			Status:     models.VoucherStatusPending,
			IssuedAt:   entry.At,
		}
		newBalance, err = s.store.RedeemReward(accountID, reward.Cost, entry, voucher)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrDuplicateCode) || attempt == 4 {
			return nil, err
		}
	}
	return &RedemptionResult{Voucher: voucher, NewBalance: newBalance}, nil
}

func (s *service) VouchersByAccount(ctx context.Context, accountID uuid.UUID) []models.Voucher {
	return s.store.ListVouchersByAccount(accountID)
}

// Lookup returns the voucher with the given code for the staff scanner.
func (s *service) Lookup(ctx context.Context, code string) (models.Voucher, error) {
	return s.store.GetVoucherByCode(code)
}

// Fulfill marks a pending voucher fulfilled. Fulfilling twice fails with
// the store's ErrAlreadyFulfilled.
func (s *service) Fulfill(ctx context.Context, code string) (models.Voucher, error) {
	return s.store.FulfillVoucher(code, time.Now().UTC())
}

// newVoucherCode returns a code like VCH-8D41F0 shown at redemption counters.
func newVoucherCode() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return "VCH-" + strings.ToUpper(hex.EncodeToString(b))
}
