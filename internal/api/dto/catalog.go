package dto

import (
	"trailpack/internal/domain"
)

type CatalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	WeightGrams int    `json:"weightGrams"`
	DefaultQty  int    `json:"defaultQty"`
	InList      *bool  `json:"inList,omitempty"`
}

func CatalogEntryFromDomain(entry *domain.CatalogEntry) *CatalogEntry {
	if entry == nil {
		return nil
	}
	return &CatalogEntry{
		ID:          entry.ID.String(),
		Name:        entry.Name,
		Description: entry.Description,
		Category:    entry.Category,
		Type:        string(entry.Type),
		WeightGrams: entry.WeightGrams,
		DefaultQty:  entry.DefaultQty,
	}
}

func CatalogEntriesFromDomain(entries []*domain.CatalogEntry) []*CatalogEntry {
	out := make([]*CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, CatalogEntryFromDomain(entry))
	}
	return out
}

func CatalogEntriesWithPresenceFromDomain(entries []*domain.CatalogEntryPresence) []*CatalogEntry {
	out := make([]*CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		d := CatalogEntryFromDomain(&entry.CatalogEntry)
		inList := entry.InList
		d.InList = &inList
		out = append(out, d)
	}
	return out
}

type UpsertCatalogEntryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type" validate:"required,oneof=base worn consumable"`
	WeightGrams int    `json:"weightGrams" validate:"required,gt=0"`
	DefaultQty  int    `json:"defaultQty" validate:"required,gt=0"`
}
