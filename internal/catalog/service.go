// Package catalog serves the Nia Store catalog: a fixed item list filtered
// by category and name search.
package catalog

import (
	"context"
	"strings"

	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/store"
)

// AllCategories is the sentinel that disables the category filter.
const AllCategories = "All"

type Service interface {
	Filter(ctx context.Context, category, search string) []models.CatalogItem
}

type service struct {
	store *store.Store
}

func NewService(s *store.Store) *service {
	return &service{store: s}
}

var _ Service = (*service)(nil)

// Filter applies the category filter (case-insensitive equality; "All" or
// empty passes everything) AND the search filter (case-insensitive name
// substring). Items come back in catalog insertion order.
func (s *service) Filter(ctx context.Context, category, search string) []models.CatalogItem {
	all := category == "" || strings.EqualFold(category, AllCategories)
	needle := strings.ToLower(search)
	var out []models.CatalogItem
	for _, item := range s.store.ListCatalog() {
		if !all && !strings.EqualFold(item.Category, category) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}
