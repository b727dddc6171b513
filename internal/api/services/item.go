package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trailpack/internal/domain"
	"trailpack/internal/repository"
)

type CreateItemInput struct {
	Name        string
	Description string
	Category    string
	Type        domain.ItemType
	WeightGrams int
	Quantity    int
}

// ItemUpdate is a tagged partial update. Set fields are applied in a fixed
// order: category, type, quantity, weight, description. Category, type and
// quantity are plain single-row writes; weight and description go through the
// Synchronizer and fan out across lists.
type ItemUpdate struct {
	Category    *string
	Type        *domain.ItemType
	Quantity    *int
	WeightGrams *int
	Description *string
}

// ItemService applies item edits, routing shared-shape edits (weight,
// description) through the Catalog Synchronizer.
type ItemService struct {
	db       *sqlx.DB
	itemRepo *repository.ItemRepository
	listRepo *repository.ListRepository
	sync     *CatalogSyncService
}

func NewItemService(db *sqlx.DB, sync *CatalogSyncService) *ItemService {
	return &ItemService{
		db:       db,
		itemRepo: repository.NewItemRepository(db),
		listRepo: repository.NewListRepository(db),
		sync:     sync,
	}
}

// CreateItem validates the attributes, remembers the gear in the catalog and
// inserts the item into the target list, both in one transaction.
func (s *ItemService) CreateItem(ctx context.Context, userID, listID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrInvalidInput
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidItemType
	}
	if input.WeightGrams <= 0 {
		return nil, ErrInvalidWeight
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	input.Description = domain.Truncate(input.Description, domain.MaxDescriptionLen)
	input.Category = domain.Truncate(input.Category, domain.MaxCategoryLen)

	if _, err := s.listRepo.FindByID(userID, listID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	entry := &domain.CatalogEntry{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		WeightGrams: input.WeightGrams,
		DefaultQty:  input.Quantity,
	}
	if _, err := upsertCatalogEntry(tx, userID, entry); err != nil {
		return nil, err
	}

	item := &domain.Item{
		UserID:      userID,
		ListID:      &listID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		WeightGrams: input.WeightGrams,
		Quantity:    input.Quantity,
	}
	if err := repository.NewItemRepository(tx).Create(item); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *ItemService) Get(ctx context.Context, userID, itemID uuid.UUID) (*domain.Item, error) {
	return s.itemRepo.FindByID(userID, itemID)
}

func (s *ItemService) ListForList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Item, error) {
	if _, err := s.listRepo.FindByID(userID, listID); err != nil {
		return nil, err
	}
	return s.itemRepo.FindByList(userID, listID)
}

// ApplyUpdate applies the set fields of the update in their documented order
// and returns the item as it stands afterwards.
func (s *ItemService) ApplyUpdate(ctx context.Context, userID, itemID uuid.UUID, upd ItemUpdate) (*domain.Item, error) {
	// Every set field is validated before the first write; an invalid update
	// leaves the item untouched.
	if upd.Type != nil && !upd.Type.Valid() {
		return nil, ErrInvalidItemType
	}
	if upd.Quantity != nil && *upd.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if upd.WeightGrams != nil && *upd.WeightGrams <= 0 {
		return nil, ErrInvalidWeight
	}

	if _, err := s.itemRepo.FindByID(userID, itemID); err != nil {
		return nil, err
	}

	if upd.Category != nil {
		category := domain.Truncate(*upd.Category, domain.MaxCategoryLen)
		if err := s.itemRepo.UpdateCategory(userID, itemID, category); err != nil {
			return nil, err
		}
	}

	if upd.Type != nil {
		if err := s.itemRepo.UpdateType(userID, itemID, *upd.Type); err != nil {
			return nil, err
		}
	}

	if upd.Quantity != nil {
		if err := s.itemRepo.UpdateQuantity(userID, itemID, *upd.Quantity); err != nil {
			return nil, err
		}
	}

	if upd.WeightGrams != nil {
		if _, err := s.sync.PropagateWeightChange(ctx, userID, itemID, *upd.WeightGrams); err != nil {
			return nil, err
		}
	}

	if upd.Description != nil {
		if _, err := s.sync.PropagateDescriptionChange(ctx, userID, itemID, *upd.Description); err != nil {
			return nil, err
		}
	}

	return s.itemRepo.FindByID(userID, itemID)
}

// DeleteItem removes one item. The catalog keeps its entry: it is a durable
// memory of gear the user has owned.
func (s *ItemService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.itemRepo.Delete(userID, itemID)
}

// ClearList deletes every item of the list, leaving the list and the catalog.
func (s *ItemService) ClearList(ctx context.Context, userID, listID uuid.UUID) error {
	if _, err := s.listRepo.FindByID(userID, listID); err != nil {
		return err
	}
	return s.itemRepo.DeleteByList(userID, listID)
}

// Categories enumerates the category labels actually in use by the user's items.
func (s *ItemService) Categories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.itemRepo.DistinctCategories(userID)
}
