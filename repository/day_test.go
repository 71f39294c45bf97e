package repository

import (
	"testing"

	"mealtrack-go-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRepoCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var days DayRepo
	first, err := days.Create(2024, 10, 12)
	require.NoError(t, err)

	second, err := days.Create(2024, 10, 12)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int
	require.NoError(t, db.Model(&models.Day{}).Count(&count).Error)
	assert.Equal(t, 1, count)
}

func TestDayRepoGetByDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var days DayRepo
	_, err := days.GetByDate(2024, 10, 12)
	assert.Equal(t, ErrNotFound, err)

	created, err := days.Create(2024, 10, 12)
	require.NoError(t, err)

	found, err := days.GetByDate(2024, 10, 12)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 2024, found.Year)
	assert.Equal(t, 10, found.Month)
	assert.Equal(t, 12, found.Day)

	byID, err := days.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, found, byID)

	_, err = days.GetByID(9999)
	assert.Equal(t, ErrNotFound, err)
}
