package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trailpack/internal/domain"
	"trailpack/internal/repository"
)

// CatalogService serves read views of the gear catalog and the operations
// that do not need the Synchronizer's fan-out.
type CatalogService struct {
	db          *sqlx.DB
	catalogRepo *repository.CatalogRepository
	listRepo    *repository.ListRepository
	itemRepo    *repository.ItemRepository
}

func NewCatalogService(db *sqlx.DB) *CatalogService {
	return &CatalogService{
		db:          db,
		catalogRepo: repository.NewCatalogRepository(db),
		listRepo:    repository.NewListRepository(db),
		itemRepo:    repository.NewItemRepository(db),
	}
}

func (s *CatalogService) ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.CatalogEntry, error) {
	return s.catalogRepo.FindAllByUser(userID)
}

// ListWithPresence returns every catalog entry together with whether the
// given list already holds an item matching the entry's key.
func (s *CatalogService) ListWithPresence(ctx context.Context, userID, listID uuid.UUID) ([]*domain.CatalogEntryPresence, error) {
	if _, err := s.listRepo.FindByID(userID, listID); err != nil {
		return nil, err
	}
	return s.catalogRepo.FindAllWithPresence(userID, listID)
}

// AddToList instantiates a catalog entry as an item in the target list,
// using the entry's default quantity.
func (s *CatalogService) AddToList(ctx context.Context, userID, entryID, listID uuid.UUID) (*domain.Item, error) {
	entry, err := s.catalogRepo.FindByID(userID, entryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.listRepo.FindByID(userID, listID); err != nil {
		return nil, err
	}

	item := &domain.Item{
		UserID:      userID,
		ListID:      &listID,
		Name:        entry.Name,
		Description: entry.Description,
		Category:    entry.Category,
		Type:        entry.Type,
		WeightGrams: entry.WeightGrams,
		Quantity:    entry.DefaultQty,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteEntry forgets one catalog row. Items referencing the same key are
// untouched; lists never point into the catalog.
func (s *CatalogService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	return s.catalogRepo.Delete(userID, entryID)
}
