package domain

import "github.com/google/uuid"

// CatalogEntry is a de-duplicated, per-user remembered gear template. Entries
// are unique per (user, name, category, type, weight); the Synchronizer merges
// rows whose keys collide after a weight edit.
type CatalogEntry struct {
	Model
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Type        ItemType  `db:"item_type"`
	WeightGrams int       `db:"weight_grams"`
	DefaultQty  int       `db:"default_qty"`
}

func (e *CatalogEntry) Key() GearKey {
	return GearKey{
		Name:        e.Name,
		Category:    e.Category,
		Type:        e.Type,
		WeightGrams: e.WeightGrams,
	}
}

// CatalogEntryPresence is the read-only projection of an entry against one
// list: InList is true when that list holds an item matching the entry's key.
type CatalogEntryPresence struct {
	CatalogEntry
	InList bool `db:"in_list"`
}
