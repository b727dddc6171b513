package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailpack/internal/domain"
)

func createTestItem(t *testing.T, userID uuid.UUID, listID *uuid.UUID, name, category string, itemType domain.ItemType, grams, qty int) *domain.Item {
	t.Helper()

	repo := NewItemRepository(testDB.DB())
	item := &domain.Item{
		UserID:      userID,
		ListID:      listID,
		Name:        name,
		Category:    category,
		Type:        itemType,
		WeightGrams: grams,
		Quantity:    qty,
	}
	require.NoError(t, repo.Create(item))

	return item
}

func TestItemRepository_UpdateWeightByKey(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewItemRepository(testDB.DB())
	user := createTestUser(t)
	listA := createTestList(t, user.ID, "List A")
	listB := createTestList(t, user.ID, "List B")

	createTestItem(t, user.ID, &listA.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	createTestItem(t, user.ID, &listB.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	other := createTestItem(t, user.ID, &listA.ID, "Tent", "Shelter", domain.ItemTypeBase, 900, 1)

	key := domain.GearKey{Name: "Tent", Category: "Shelter", Type: domain.ItemTypeBase, WeightGrams: 1400}
	affected, err := repo.UpdateWeightByKey(user.ID, key, 1200)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	// The item with a different pre-edit weight is a different gear.
	found, err := repo.FindByID(user.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 900, found.WeightGrams)
}

func TestItemRepository_UpdateDescriptionByKey_IgnoresCategory(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewItemRepository(testDB.DB())
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")

	a := createTestItem(t, user.ID, &list.ID, "Headlamp", "Electronics", domain.ItemTypeBase, 95, 1)
	b := createTestItem(t, user.ID, &list.ID, "Headlamp", "Safety", domain.ItemTypeBase, 95, 1)

	affected, err := repo.UpdateDescriptionByKey(user.ID, "Headlamp", domain.ItemTypeBase, 95, "300 lumen")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		found, err := repo.FindByID(user.ID, id)
		require.NoError(t, err)
		assert.Equal(t, "300 lumen", found.Description)
	}
}

func TestItemRepository_AttachOrphans(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewItemRepository(testDB.DB())
	user := createTestUser(t)
	list := createTestList(t, user.ID, "Adoptive list")

	orphan := createTestItem(t, user.ID, nil, "Spork", "Kitchen", domain.ItemTypeBase, 15, 1)

	require.NoError(t, repo.AttachOrphans(user.ID, list.ID))

	found, err := repo.FindByID(user.ID, orphan.ID)
	require.NoError(t, err)
	require.NotNil(t, found.ListID)
	assert.Equal(t, list.ID, *found.ListID)
}

func TestItemRepository_DistinctCategories(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewItemRepository(testDB.DB())
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")

	createTestItem(t, user.ID, &list.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	createTestItem(t, user.ID, &list.ID, "Tarp", "Shelter", domain.ItemTypeBase, 400, 1)
	createTestItem(t, user.ID, &list.ID, "Stove", "Kitchen", domain.ItemTypeBase, 90, 1)
	createTestItem(t, user.ID, &list.ID, "Mystery", "", domain.ItemTypeBase, 10, 1)

	categories, err := repo.DistinctCategories(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kitchen", "Shelter"}, categories)
}

func TestItemRepository_DeleteByList(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	repo := NewItemRepository(testDB.DB())
	user := createTestUser(t)
	list := createTestList(t, user.ID, "List")
	keep := createTestList(t, user.ID, "Keep")

	createTestItem(t, user.ID, &list.ID, "Tent", "Shelter", domain.ItemTypeBase, 1400, 1)
	kept := createTestItem(t, user.ID, &keep.ID, "Tarp", "Shelter", domain.ItemTypeBase, 400, 1)

	require.NoError(t, repo.DeleteByList(user.ID, list.ID))

	items, err := repo.FindByList(user.ID, list.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = repo.FindByID(user.ID, kept.ID)
	assert.NoError(t, err)
}
