package repository

import (
	"testing"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepositoryScopesToOwner(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewItemRepository(db)

	mine, err := repo.Create(&domain.Item{UserID: 1, Name: "Milk", ExpiryDate: "2026-09-10", Quantity: 1})
	require.NoError(t, err)
	_, err = repo.Create(&domain.Item{UserID: 2, Name: "Bread", ExpiryDate: "2026-09-05", Quantity: 1})
	require.NoError(t, err)

	items, err := repo.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)

	// other users cannot see, update, or delete the item
	_, err = repo.FindByID(mine.ID, 2)
	require.Error(t, err)

	err = repo.Update(&domain.Item{ID: mine.ID, UserID: 2, Name: "Stolen", ExpiryDate: "2026-01-01", Quantity: 1})
	require.Error(t, err)

	ok, err := repo.Delete(mine.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(mine.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)

	ok, err = repo.Delete(mine.ID, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestItemRepositoryUpdateFields(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewItemRepository(db)

	item, err := repo.Create(&domain.Item{UserID: 1, Name: "Yogurt", ExpiryDate: "2026-09-10", Quantity: 2})
	require.NoError(t, err)

	err = repo.Update(&domain.Item{
		ID:         item.ID,
		UserID:     1,
		Name:       "Greek Yogurt",
		Brand:      "Acme",
		ExpiryDate: "2026-09-12",
		Quantity:   4,
		IsPriority: true,
	})
	require.NoError(t, err)

	got, err := repo.FindByID(item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Greek Yogurt", got.Name)
	assert.Equal(t, "Acme", got.Brand)
	assert.Equal(t, 4, got.Quantity)
	assert.True(t, got.IsPriority)
}
