package storefront

import (
	"context"
	"strings"
	"sync"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
)

// CatalogStore is the session's read-through cache of the equipment catalog
type CatalogStore struct {
	remote Remote

	mu    sync.RWMutex
	items []domain.Equipment
}

func NewCatalogStore(remote Remote) *CatalogStore {
	return &CatalogStore{remote: remote}
}

// Refresh replaces the cache with the service's current catalog. There is no
// merge: whatever the service answers wins, including over a just-rented item.
// On failure the previous cache is kept and the error is returned for logging.
func (c *CatalogStore) Refresh(ctx context.Context) error {
	items, err := c.remote.ListEquipment(ctx, domain.EquipmentFilter{})
	if err != nil {
		logger.Warn("Catalog refresh failed, keeping cached catalog", "error", err)
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// List returns the cached items matching filter in source order
func (c *CatalogStore) List(filter domain.EquipmentFilter) []domain.Equipment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Equipment, 0, len(c.items))
	for _, item := range c.items {
		if Matches(item, filter) {
			result = append(result, item)
		}
	}
	return result
}

// Get looks an item up by id
func (c *CatalogStore) Get(id int64) (domain.Equipment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Equipment{}, false
}

// Matches is the conjunctive catalog predicate: category equality (unless
// unset or "all") and case-insensitive substring match on the name.
func Matches(item domain.Equipment, filter domain.EquipmentFilter) bool {
	if filter.HasCategory() && item.Category != filter.Category {
		return false
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
		return false
	}
	return true
}
