package dto

import (
	"time"

	"trailpack/internal/domain"
)

type PackList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func PackListFromDomain(list *domain.PackList) *PackList {
	if list == nil {
		return nil
	}
	return &PackList{
		ID:        list.ID.String(),
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
	}
}

func PackListsFromDomain(lists []*domain.PackList) []*PackList {
	out := make([]*PackList, 0, len(lists))
	for _, list := range lists {
		out = append(out, PackListFromDomain(list))
	}
	return out
}

type CreateListRequest struct {
	Name string `json:"name" validate:"required"`
}

type CloneListRequest struct {
	Name string `json:"name" validate:"required"`
}

type ListTotals struct {
	CarriedGrams    int `json:"carriedGrams"`
	BaseGrams       int `json:"baseGrams"`
	WornGrams       int `json:"wornGrams"`
	ConsumableGrams int `json:"consumableGrams"`
}

func ListTotalsFromDomain(t *domain.ListTotals) *ListTotals {
	if t == nil {
		return nil
	}
	return &ListTotals{
		CarriedGrams:    t.CarriedGrams,
		BaseGrams:       t.BaseGrams,
		WornGrams:       t.WornGrams,
		ConsumableGrams: t.ConsumableGrams,
	}
}
