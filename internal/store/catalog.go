package store

import "github.com/niaone/backend/internal/models"

// SetCatalog replaces the catalog. Called once at seed time.
func (s *Store) SetCatalog(items []models.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = append([]models.CatalogItem(nil), items...)
}

// ListCatalog returns the catalog in insertion order.
func (s *Store) ListCatalog() []models.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CatalogItem(nil), s.catalog...)
}

// GetCatalogItem returns the item with the given ID.
func (s *Store) GetCatalogItem(id int) (models.CatalogItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.catalog {
		if it.ID == id {
			return it, nil
		}
	}
	return models.CatalogItem{}, ErrNotFound
}
