package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailpack/internal/domain"
	"trailpack/internal/repository"
)

func newItemService() *ItemService {
	return NewItemService(testDB.DB(), NewCatalogSyncService(testDB.DB()))
}

func TestItemService_CreateItem(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, user.ID, list.ID, CreateItemInput{
		Name: "Tent", Category: "Shelter", Type: domain.ItemTypeBase,
		WeightGrams: 1400, Quantity: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, item.ListID)
	assert.Equal(t, list.ID, *item.ListID)

	// Creation also remembered the gear in the catalog.
	entry, err := repository.NewCatalogRepository(testDB.DB()).FindByKey(user.ID, item.Key())
	require.NoError(t, err)
	assert.Equal(t, 1, entry.DefaultQty)
}

func TestItemService_CreateItem_Validation(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateItemInput
		want  error
	}{
		{"blank name", CreateItemInput{Name: "   ", Type: domain.ItemTypeBase, WeightGrams: 100, Quantity: 1}, ErrInvalidInput},
		{"bad type", CreateItemInput{Name: "Tent", Type: "decorative", WeightGrams: 100, Quantity: 1}, ErrInvalidItemType},
		{"zero weight", CreateItemInput{Name: "Tent", Type: domain.ItemTypeBase, WeightGrams: 0, Quantity: 1}, ErrInvalidWeight},
		{"zero quantity", CreateItemInput{Name: "Tent", Type: domain.ItemTypeBase, WeightGrams: 100, Quantity: 0}, ErrInvalidQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateItem(ctx, user.ID, list.ID, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := svc.CreateItem(ctx, user.ID, list.ID, CreateItemInput{
		Name: "Tent", Type: domain.ItemTypeBase, WeightGrams: 100, Quantity: 1,
	})
	assert.NoError(t, err)
}

func TestItemService_ApplyUpdate_CategoryDoesNotFanOut(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	listA := createTestList(t, user.ID, "List A")
	listB := createTestList(t, user.ID, "List B")
	ctx := context.Background()

	edited := createTestItem(t, user.ID, listA.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	sibling := createTestItem(t, user.ID, listB.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)

	category := "Big three"
	updated, err := svc.ApplyUpdate(ctx, user.ID, edited.ID, ItemUpdate{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, "Big three", updated.Category)

	// Category is per-item; the sibling keeps its own.
	found, err := repository.NewItemRepository(testDB.DB()).FindByID(user.ID, sibling.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shelter", found.Category)
}

func TestItemService_ApplyUpdate_WeightFansOut(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	listA := createTestList(t, user.ID, "List A")
	listB := createTestList(t, user.ID, "List B")
	ctx := context.Background()

	edited := createTestItem(t, user.ID, listA.ID, "Sleeping bag", "Sleep", domain.ItemTypeBase, 850, 1)
	sibling := createTestItem(t, user.ID, listB.ID, "Sleeping bag", "Sleep", domain.ItemTypeBase, 850, 1)

	grams := 790
	updated, err := svc.ApplyUpdate(ctx, user.ID, edited.ID, ItemUpdate{WeightGrams: &grams})
	require.NoError(t, err)
	assert.Equal(t, 790, updated.WeightGrams)

	found, err := repository.NewItemRepository(testDB.DB()).FindByID(user.ID, sibling.ID)
	require.NoError(t, err)
	assert.Equal(t, 790, found.WeightGrams)
}

func TestItemService_ApplyUpdate_MultipleFields(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	item := createTestItem(t, user.ID, list.ID, "Trail mix", "Food", domain.ItemTypeBase, 150, 1)

	itemType := domain.ItemTypeConsumable
	qty := 3
	desc := "Nuts and raisins"
	updated, err := svc.ApplyUpdate(ctx, user.ID, item.ID, ItemUpdate{
		Type:        &itemType,
		Quantity:    &qty,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypeConsumable, updated.Type)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "Nuts and raisins", updated.Description)
}

func TestItemService_ApplyUpdate_Validation(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	item := createTestItem(t, user.ID, list.ID, "Stove", "Kitchen", domain.ItemTypeBase, 90, 1)

	badType := domain.ItemType("decorative")
	_, err := svc.ApplyUpdate(ctx, user.ID, item.ID, ItemUpdate{Type: &badType})
	assert.ErrorIs(t, err, ErrInvalidItemType)

	zeroQty := 0
	_, err = svc.ApplyUpdate(ctx, user.ID, item.ID, ItemUpdate{Quantity: &zeroQty})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	badWeight := -10
	_, err = svc.ApplyUpdate(ctx, user.ID, item.ID, ItemUpdate{WeightGrams: &badWeight})
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestItemService_ApplyUpdate_InvalidFieldRejectsWholeUpdate(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	item := createTestItem(t, user.ID, list.ID, "Pot", "Kitchen", domain.ItemTypeBase, 250, 1)

	category := "Cookware"
	zeroQty := 0
	_, err := svc.ApplyUpdate(ctx, user.ID, item.ID, ItemUpdate{
		Category: &category,
		Quantity: &zeroQty,
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	unchanged, err := svc.Get(ctx, user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", unchanged.Category)
	assert.Equal(t, 1, unchanged.Quantity)
}

func TestItemService_DeleteItem_KeepsCatalog(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, user.ID, list.ID, CreateItemInput{
		Name: "Tent", Category: "Shelter", Type: domain.ItemTypeBase,
		WeightGrams: 1400, Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, user.ID, item.ID))

	_, err = repository.NewItemRepository(testDB.DB()).FindByID(user.ID, item.ID)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	_, err = repository.NewCatalogRepository(testDB.DB()).FindByKey(user.ID, item.Key())
	assert.NoError(t, err)
}

func TestItemService_ClearList(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := newItemService()
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	createTestItem(t, user.ID, list.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	createTestItem(t, user.ID, list.ID, "Stove", "Kitchen", domain.ItemTypeBase, 90, 1)

	require.NoError(t, svc.ClearList(ctx, user.ID, list.ID))

	items, err := svc.ListForList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// The list itself survives.
	_, err = repository.NewListRepository(testDB.DB()).FindByID(user.ID, list.ID)
	assert.NoError(t, err)
}
