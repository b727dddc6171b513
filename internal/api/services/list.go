package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trailpack/internal/domain"
	"trailpack/internal/repository"
)

// ListService owns list lifecycle: lazy default creation, cloning, and the
// at-least-one-list invariant.
type ListService struct {
	db       *sqlx.DB
	listRepo *repository.ListRepository
	itemRepo *repository.ItemRepository
}

func NewListService(db *sqlx.DB) *ListService {
	return &ListService{
		db:       db,
		listRepo: repository.NewListRepository(db),
		itemRepo: repository.NewItemRepository(db),
	}
}

// EnsureDefaultList returns the user's first list by creation order, creating
// and seeding it when the user has none. Items left without a list assignment
// are re-attached to the resolved list. Safe to call repeatedly; the
// check-then-create runs inside one transaction.
func (s *ListService) EnsureDefaultList(ctx context.Context, userID uuid.UUID) (*domain.PackList, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	lists := repository.NewListRepository(tx)
	items := repository.NewItemRepository(tx)

	list, err := lists.First(userID)
	if errors.Is(err, repository.ErrListNotFound) {
		list, err = seedDefaultList(tx, userID)
	}
	if err != nil {
		return nil, err
	}

	if err := items.AttachOrphans(userID, list.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return list, nil
}

func seedDefaultList(tx *sqlx.Tx, userID uuid.UUID) (*domain.PackList, error) {
	lists := repository.NewListRepository(tx)
	items := repository.NewItemRepository(tx)

	list := &domain.PackList{UserID: userID, Name: DefaultListName}
	if err := lists.Create(list); err != nil {
		return nil, err
	}

	for _, gear := range starterGear {
		entry := &domain.CatalogEntry{
			Name:        gear.Name,
			Description: gear.Description,
			Category:    gear.Category,
			Type:        gear.Type,
			WeightGrams: gear.WeightGrams,
			DefaultQty:  gear.Quantity,
		}
		if _, err := upsertCatalogEntry(tx, userID, entry); err != nil {
			return nil, err
		}

		listID := list.ID
		item := &domain.Item{
			UserID:      userID,
			ListID:      &listID,
			Name:        gear.Name,
			Description: gear.Description,
			Category:    gear.Category,
			Type:        gear.Type,
			WeightGrams: gear.WeightGrams,
			Quantity:    gear.Quantity,
		}
		if err := items.Create(item); err != nil {
			return nil, err
		}
	}

	return list, nil
}

func (s *ListService) ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.PackList, error) {
	return s.listRepo.FindAllByUser(userID)
}

func (s *ListService) Get(ctx context.Context, userID, listID uuid.UUID) (*domain.PackList, error) {
	return s.listRepo.FindByID(userID, listID)
}

// CreateList creates an empty list. The name is truncated to 40 characters
// and not otherwise validated.
func (s *ListService) CreateList(ctx context.Context, userID uuid.UUID, name string) (*domain.PackList, error) {
	list := &domain.PackList{
		UserID: userID,
		Name:   domain.Truncate(name, domain.MaxListNameLen),
	}
	if err := s.listRepo.Create(list); err != nil {
		return nil, err
	}
	return list, nil
}

// CloneList copies every item of the source list into a fresh list. The
// originals stay untouched and the catalog already covers the copies. Either
// the whole clone lands or none of it does.
func (s *ListService) CloneList(ctx context.Context, userID, sourceID uuid.UUID, name string) (*domain.PackList, error) {
	if _, err := s.listRepo.FindByID(userID, sourceID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrCloneFailed, err)
	}
	defer tx.Rollback()

	lists := repository.NewListRepository(tx)
	items := repository.NewItemRepository(tx)

	clone := &domain.PackList{
		UserID: userID,
		Name:   domain.Truncate(name, domain.MaxListNameLen),
	}
	if err := lists.Create(clone); err != nil {
		return nil, fmt.Errorf("%w: create list: %v", ErrCloneFailed, err)
	}

	source, err := items.FindByList(userID, sourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: read source items: %v", ErrCloneFailed, err)
	}

	for _, item := range source {
		cloneID := clone.ID
		dup := &domain.Item{
			UserID:      userID,
			ListID:      &cloneID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Type:        item.Type,
			WeightGrams: item.WeightGrams,
			Quantity:    item.Quantity,
		}
		if err := items.Create(dup); err != nil {
			return nil, fmt.Errorf("%w: copy item: %v", ErrCloneFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrCloneFailed, err)
	}

	return clone, nil
}

// DeleteList removes the list and its items, refusing to delete the user's
// only remaining list.
func (s *ListService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	items := repository.NewItemRepository(tx)
	lists := repository.NewListRepository(tx)

	if _, err := lists.FindByID(userID, listID); err != nil {
		return err
	}

	// Counted inside the transaction so concurrent deletes cannot both pass
	// the last-list check.
	count, err := lists.CountByUser(userID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastListProtected
	}

	if err := items.DeleteByList(userID, listID); err != nil {
		return err
	}
	if err := lists.Delete(userID, listID); err != nil {
		return err
	}

	return tx.Commit()
}

// Totals computes the list's weight breakdown; worn gear is excluded from the
// carried total.
func (s *ListService) Totals(ctx context.Context, userID, listID uuid.UUID) (*domain.ListTotals, error) {
	if _, err := s.listRepo.FindByID(userID, listID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByList(userID, listID)
	if err != nil {
		return nil, err
	}

	totals := domain.ComputeTotals(items)
	return &totals, nil
}
