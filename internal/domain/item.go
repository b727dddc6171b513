package domain

import "github.com/google/uuid"

type ItemType string

const (
	ItemTypeBase       ItemType = "base"
	ItemTypeWorn       ItemType = "worn"
	ItemTypeConsumable ItemType = "consumable"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeBase, ItemTypeWorn, ItemTypeConsumable:
		return true
	}
	return false
}

const (
	MaxDescriptionLen = 80
	MaxCategoryLen    = 20
)

// Item is one concrete piece of gear placed in a specific list. Items carry
// no reference to a catalog entry; the association is inferred through GearKey.
type Item struct {
	Model
	UserID      uuid.UUID  `db:"user_id"`
	ListID      *uuid.UUID `db:"list_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	Type        ItemType   `db:"item_type"`
	WeightGrams int        `db:"weight_grams"`
	Quantity    int        `db:"quantity"`
}

// GearKey is the natural key deciding whether two rows describe the same
// physical gear. Description edits match on the coarser (Name, Type,
// WeightGrams) triple; see CatalogSyncService.
type GearKey struct {
	Name        string
	Category    string
	Type        ItemType
	WeightGrams int
}

func (i *Item) Key() GearKey {
	return GearKey{
		Name:        i.Name,
		Category:    i.Category,
		Type:        i.Type,
		WeightGrams: i.WeightGrams,
	}
}

// ListTotals breaks down a list's weight by item type. Worn gear does not
// count toward the carried total.
type ListTotals struct {
	CarriedGrams    int `json:"carried_grams"`
	BaseGrams       int `json:"base_grams"`
	WornGrams       int `json:"worn_grams"`
	ConsumableGrams int `json:"consumable_grams"`
}

func ComputeTotals(items []*Item) ListTotals {
	var t ListTotals
	for _, item := range items {
		grams := item.WeightGrams * item.Quantity
		switch item.Type {
		case ItemTypeWorn:
			t.WornGrams += grams
		case ItemTypeConsumable:
			t.ConsumableGrams += grams
			t.CarriedGrams += grams
		default:
			t.BaseGrams += grams
			t.CarriedGrams += grams
		}
	}
	return t
}

func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
