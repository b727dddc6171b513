package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trailpack/internal/domain"
	"trailpack/internal/repository"
)

// CatalogSyncService keeps the gear catalog and all item copies consistent.
// Items carry no pointer to a catalog row; agreement is maintained by value,
// over the natural key (name, category, type, weight). Weight and description
// edits fan out to every row sharing the edited item's pre-edit key, and
// catalog rows whose keys collide afterwards are merged, all inside a single
// transaction.
type CatalogSyncService struct {
	db          *sqlx.DB
	itemRepo    *repository.ItemRepository
	catalogRepo *repository.CatalogRepository
}

func NewCatalogSyncService(db *sqlx.DB) *CatalogSyncService {
	return &CatalogSyncService{
		db:          db,
		itemRepo:    repository.NewItemRepository(db),
		catalogRepo: repository.NewCatalogRepository(db),
	}
}

// UpsertEntry inserts a catalog row for the candidate's natural key or, when
// one already exists, folds the candidate into it: default quantity becomes
// the max of the two, the description is taken from the candidate. Idempotent.
func (s *CatalogSyncService) UpsertEntry(ctx context.Context, userID uuid.UUID, candidate *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	return upsertCatalogEntry(s.db, userID, candidate)
}

// upsertCatalogEntry is shared with item creation and default-list seeding so
// those can run it on their own transaction handle.
func upsertCatalogEntry(h repository.ExtHandle, userID uuid.UUID, candidate *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	if strings.TrimSpace(candidate.Name) == "" || !candidate.Type.Valid() {
		return nil, ErrInvalidInput
	}
	if candidate.WeightGrams <= 0 {
		return nil, ErrInvalidWeight
	}
	if candidate.DefaultQty <= 0 {
		return nil, ErrInvalidQuantity
	}

	candidate.Description = domain.Truncate(candidate.Description, domain.MaxDescriptionLen)
	candidate.Category = domain.Truncate(candidate.Category, domain.MaxCategoryLen)

	catalog := repository.NewCatalogRepository(h)

	existing, err := catalog.FindByKey(userID, candidate.Key())
	if errors.Is(err, repository.ErrCatalogEntryNotFound) {
		entry := &domain.CatalogEntry{
			UserID:      userID,
			Name:        candidate.Name,
			Description: candidate.Description,
			Category:    candidate.Category,
			Type:        candidate.Type,
			WeightGrams: candidate.WeightGrams,
			DefaultQty:  candidate.DefaultQty,
		}
		err = catalog.Create(entry)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, repository.ErrCatalogEntryExists) {
			return nil, err
		}
		// Lost a check-then-create race; fall through to fold into the winner.
		existing, err = catalog.FindByKey(userID, candidate.Key())
	}
	if err != nil {
		return nil, err
	}

	qty := existing.DefaultQty
	if candidate.DefaultQty > qty {
		qty = candidate.DefaultQty
	}
	if qty != existing.DefaultQty || candidate.Description != existing.Description {
		if err := catalog.Fold(userID, existing.ID, qty, candidate.Description); err != nil {
			return nil, err
		}
		existing.DefaultQty = qty
		existing.Description = candidate.Description
	}

	return existing, nil
}

// PropagateWeightChange sets the weight of every item of the user matching
// the edited item's pre-edit key, across all lists, and reconciles the
// catalog: when the new key already has a row, the old row is folded into it
// and removed; otherwise the old row is re-pointed in place. All of it in one
// transaction; on failure nothing is applied and ErrSyncFailed is returned.
func (s *CatalogSyncService) PropagateWeightChange(ctx context.Context, userID, itemID uuid.UUID, newGrams int) (*domain.Item, error) {
	if newGrams <= 0 {
		return nil, ErrInvalidWeight
	}

	item, err := s.itemRepo.FindByID(userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.WeightGrams == newGrams {
		return item, nil
	}

	oldKey := item.Key()
	newKey := oldKey
	newKey.WeightGrams = newGrams

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrSyncFailed, err)
	}
	defer tx.Rollback()

	items := repository.NewItemRepository(tx)
	catalog := repository.NewCatalogRepository(tx)

	if _, err := items.UpdateWeightByKey(userID, oldKey, newGrams); err != nil {
		return nil, fmt.Errorf("%w: fan out weight: %v", ErrSyncFailed, err)
	}

	if err := mergeCatalogWeight(catalog, userID, item, oldKey, newKey, newGrams); err != nil {
		return nil, fmt.Errorf("%w: merge catalog: %v", ErrSyncFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrSyncFailed, err)
	}

	return s.itemRepo.FindByID(userID, itemID)
}

func mergeCatalogWeight(catalog *repository.CatalogRepository, userID uuid.UUID, item *domain.Item, oldKey, newKey domain.GearKey, newGrams int) error {
	oldEntry, err := catalog.FindByKey(userID, oldKey)
	if err != nil && !errors.Is(err, repository.ErrCatalogEntryNotFound) {
		return err
	}

	newEntry, err := catalog.FindByKey(userID, newKey)
	if err != nil && !errors.Is(err, repository.ErrCatalogEntryNotFound) {
		return err
	}

	switch {
	case newEntry != nil && oldEntry != nil:
		qty := newEntry.DefaultQty
		if oldEntry.DefaultQty > qty {
			qty = oldEntry.DefaultQty
		}
		if err := catalog.Fold(userID, newEntry.ID, qty, oldEntry.Description); err != nil {
			return err
		}
		if oldEntry.ID != newEntry.ID {
			return catalog.Delete(userID, oldEntry.ID)
		}
		return nil
	case newEntry != nil:
		// New key already catalogued, nothing left to fold.
		return nil
	case oldEntry != nil:
		return catalog.UpdateWeight(userID, oldEntry.ID, newGrams)
	default:
		// No catalog row for either key; remember the edited gear now.
		return catalog.Create(&domain.CatalogEntry{
			UserID:      userID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Type:        item.Type,
			WeightGrams: newGrams,
			DefaultQty:  item.Quantity,
		})
	}
}

// PropagateDescriptionChange fans a description edit out to every item and
// catalog row of the user sharing the edited item's (name, type, weight)
// triple. Category is deliberately excluded from the match so the same gear
// filed under different categories keeps one description.
func (s *CatalogSyncService) PropagateDescriptionChange(ctx context.Context, userID, itemID uuid.UUID, newDescription string) (*domain.Item, error) {
	newDescription = domain.Truncate(newDescription, domain.MaxDescriptionLen)

	item, err := s.itemRepo.FindByID(userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Description == newDescription {
		return item, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrSyncFailed, err)
	}
	defer tx.Rollback()

	items := repository.NewItemRepository(tx)
	catalog := repository.NewCatalogRepository(tx)

	if _, err := items.UpdateDescriptionByKey(userID, item.Name, item.Type, item.WeightGrams, newDescription); err != nil {
		return nil, fmt.Errorf("%w: fan out description: %v", ErrSyncFailed, err)
	}

	if _, err := catalog.UpdateDescriptionByTriple(userID, item.Name, item.Type, item.WeightGrams, newDescription); err != nil {
		return nil, fmt.Errorf("%w: update catalog: %v", ErrSyncFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrSyncFailed, err)
	}

	return s.itemRepo.FindByID(userID, itemID)
}
