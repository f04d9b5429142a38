package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/niaone/backend/internal/models"
)

// Seed loads the fixture roster, catalog, and rewards into an empty store.
// PINs are bcrypt-hashed at the given cost; pass bcrypt.DefaultCost in main
// and bcrypt.MinCost in tests.
func Seed(s *Store, cost int) error {
	now := time.Now().UTC()
	for _, sa := range models.SeedAccounts() {
		hash, err := bcrypt.GenerateFromPassword([]byte(sa.PIN), cost)
		if err != nil {
			return fmt.Errorf("hash pin for %s: %w", sa.EmployeeID, err)
		}
		acc := &models.Account{
			ID:         uuid.New(),
			Name:       sa.Name,
			EmployeeID: sa.EmployeeID,
			Role:       sa.Role,
			Balance:    sa.Balance,
			Nest:       sa.Nest,
			PINHash:    string(hash),
			JoinedAt:   now,
		}
		if err := s.AddAccount(acc); err != nil {
			return fmt.Errorf("seed account %s: %w", sa.EmployeeID, err)
		}
	}
	s.SetCatalog(models.SeedCatalog())
	s.SetRewards(models.SeedRewards())
	return nil
}
