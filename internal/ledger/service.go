// Package ledger is the core of the points program: balance adjustments,
// the resident leaderboard, onboarding, and the activity log. All point
// deltas come from the action table; callers pass codes, never raw deltas.
package ledger

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/store"
)

var (
	// ErrUnknownAction is returned for action codes outside the adjustment table.
	ErrUnknownAction = errors.New("unknown action code")
	// ErrInvalidInput is returned when onboarding is missing a required field.
	ErrInvalidInput = errors.New("name and employee code are required")
)

// AdjustmentResult is returned by a successful balance adjustment.
type AdjustmentResult struct {
	Account    *models.Account      `json:"account"`
	Entry      models.ActivityEntry `json:"entry"`
	NewBalance int                  `json:"new_balance"`
}

type Service interface {
	AdjustBalance(ctx context.Context, accountID uuid.UUID, actionCode, note string) (*AdjustmentResult, error)
	RankResidents(ctx context.Context) []*models.Account
	OnboardResident(ctx context.Context, name, employeeID, nest string) (*models.Account, error)
	Actions(ctx context.Context) []models.Action
	Activity(ctx context.Context, limit int) []models.ActivityEntry
	ActivityByAccount(ctx context.Context, accountID uuid.UUID, limit int) []models.ActivityEntry
}

type service struct {
	store *store.Store
}

func NewService(s *store.Store) *service {
	return &service{store: s}
}

var _ Service = (*service)(nil)

// AdjustBalance resolves the delta from the action table, applies it to the
// account, and records an activity entry at the head of the log. The store
// serializes the read-modify-write; the call either fully applies or fails
// before any mutation.
func (s *service) AdjustBalance(ctx context.Context, accountID uuid.UUID, actionCode, note string) (*AdjustmentResult, error) {
	action, ok := models.ActionByCode(actionCode)
	if !ok {
		return nil, ErrUnknownAction
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
		ActionCode:  action.Code,
		Points:      action.Points,
		Note:        note,
	}
	newBalance, err := s.store.AdjustBalance(accountID, action.Points, entry)
	if err != nil {
		return nil, err
	}
	acc.Balance = newBalance
	return &AdjustmentResult{Account: acc, Entry: entry, NewBalance: newBalance}, nil
}

// RankResidents returns residents sorted by descending balance. Ties keep
// their insertion order. The ranking is recomputed on every call.
func (s *service) RankResidents(ctx context.Context) []*models.Account {
	residents := s.store.ListAccountsByRole(models.RoleResident)
	sort.SliceStable(residents, func(i, j int) bool {
		return residents[i].Balance > residents[j].Balance
	})
	return residents
}

// OnboardResident appends a new resident account with balance 0.
func (s *service) OnboardResident(ctx context.Context, name, employeeID, nest string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	employeeID = strings.TrimSpace(employeeID)
	if name == "" || employeeID == "" {
		return nil, ErrInvalidInput
	}
	acc := &models.Account{
		ID:         uuid.New(),
		Name:       name,
		EmployeeID: employeeID,
		Role:       models.RoleResident,
		Balance:    0,
		Nest:       nest,
		JoinedAt:   time.Now().UTC(),
	}
	if err := s.store.AddAccount(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *service) Actions(ctx context.Context) []models.Action {
	return models.Actions()
}

func (s *service) Activity(ctx context.Context, limit int) []models.ActivityEntry {
	return s.store.ListActivity(limit)
}

func (s *service) ActivityByAccount(ctx context.Context, accountID uuid.UUID, limit int) []models.ActivityEntry {
	return s.store.ListActivityByAccount(accountID, limit)
}
