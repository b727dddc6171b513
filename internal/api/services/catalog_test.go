package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailpack/internal/domain"
	"trailpack/internal/repository"
)

func TestCatalogService_ListWithPresence(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := NewCatalogService(testDB.DB())
	user := createTestUser(t)
	list := createTestList(t, user.ID, "Presence")
	ctx := context.Background()

	createTestCatalogEntry(t, user.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	createTestCatalogEntry(t, user.ID, "Stove", "Kitchen", domain.ItemTypeBase, 90, 1)
	createTestItem(t, user.ID, list.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)

	entries, err := svc.ListWithPresence(ctx, user.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	flags := map[string]bool{}
	for _, e := range entries {
		flags[e.Name] = e.InList
	}
	assert.True(t, flags["Tent"])
	assert.False(t, flags["Stove"])

	_, err = svc.ListWithPresence(ctx, user.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrListNotFound)
}

func TestCatalogService_AddToList(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := NewCatalogService(testDB.DB())
	user := createTestUser(t)
	list := createTestList(t, user.ID, "Target")
	ctx := context.Background()

	entry := createTestCatalogEntry(t, user.ID, "Water bottle", "Hydration", domain.ItemTypeBase, 40, 2)

	item, err := svc.AddToList(ctx, user.ID, entry.ID, list.ID)
	require.NoError(t, err)
	require.NotNil(t, item.ListID)
	assert.Equal(t, list.ID, *item.ListID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, entry.Key(), item.Key())

	_, err = svc.AddToList(ctx, user.ID, uuid.New(), list.ID)
	assert.ErrorIs(t, err, repository.ErrCatalogEntryNotFound)

	_, err = svc.AddToList(ctx, user.ID, entry.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrListNotFound)
}

func TestCatalogService_DeleteEntry_LeavesItems(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	svc := NewCatalogService(testDB.DB())
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	ctx := context.Background()

	entry := createTestCatalogEntry(t, user.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	item := createTestItem(t, user.ID, list.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)

	require.NoError(t, svc.DeleteEntry(ctx, user.ID, entry.ID))

	_, err := repository.NewCatalogRepository(testDB.DB()).FindByID(user.ID, entry.ID)
	assert.ErrorIs(t, err, repository.ErrCatalogEntryNotFound)

	_, err = repository.NewItemRepository(testDB.DB()).FindByID(user.ID, item.ID)
	assert.NoError(t, err)
}
