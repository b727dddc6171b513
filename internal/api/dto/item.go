package dto

import (
	"time"

	"trailpack/internal/domain"
)

type Item struct {
	ID          string    `json:"id"`
	ListID      *string   `json:"listId,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	WeightGrams int       `json:"weightGrams"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ItemFromDomain(item *domain.Item) *Item {
	if item == nil {
		return nil
	}
	out := &Item{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Type:        string(item.Type),
		WeightGrams: item.WeightGrams,
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
	}
	if item.ListID != nil {
		id := item.ListID.String()
		out.ListID = &id
	}
	return out
}

func ItemsFromDomain(items []*domain.Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		out = append(out, ItemFromDomain(item))
	}
	return out
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type" validate:"required,oneof=base worn consumable"`
	WeightGrams int    `json:"weightGrams" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateItemRequest carries a partial edit; only the set fields are applied,
// in the order category, type, quantity, weight, description.
type UpdateItemRequest struct {
	Category    *string `json:"category,omitempty"`
	Type        *string `json:"type,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	WeightGrams *int    `json:"weightGrams,omitempty"`
	Description *string `json:"description,omitempty"`
}
