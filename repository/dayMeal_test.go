package repository

import (
	"testing"

	"mealtrack-go-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayMealRepoUniqueSlot(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var meals MealRepo
	var dayMeals DayMealRepo

	first, err := meals.Create(1, 2)
	require.NoError(t, err)
	_, err = dayMeals.Create(1, 2, 3, first.ID)
	require.NoError(t, err)

	second, err := meals.Create(0, 0)
	require.NoError(t, err)
	_, err = dayMeals.Create(1, 2, 3, second.ID)
	assert.Equal(t, ErrDuplicate, err)

	link, err := dayMeals.Get(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, link.MealID)
}

func TestDayMealRepoCreateWithMealRollsBackOnConflict(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var dayMeals DayMealRepo
	_, err := dayMeals.CreateWithMeal(1, 2, 3, 1, 2)
	require.NoError(t, err)

	_, err = dayMeals.CreateWithMeal(1, 2, 3, 0, 0)
	assert.Equal(t, ErrDuplicate, err)

	// the conflicting meal row was rolled back, no orphan remains
	var mealCount int
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	assert.Equal(t, 1, mealCount)
}

func TestDayMealRepoGetAndList(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var dayMeals DayMealRepo
	_, err := dayMeals.Get(1, 2, 3)
	assert.Equal(t, ErrNotFound, err)

	lunch, err := dayMeals.CreateWithMeal(1, 2, 2, 1, 2)
	require.NoError(t, err)
	dinner, err := dayMeals.CreateWithMeal(1, 2, 3, 0, 1)
	require.NoError(t, err)
	// other user, other day: not listed
	_, err = dayMeals.CreateWithMeal(2, 2, 2, 0, 0)
	require.NoError(t, err)
	_, err = dayMeals.CreateWithMeal(1, 9, 2, 0, 0)
	require.NoError(t, err)

	rows, err := dayMeals.ListByUserAndDay(1, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.DayMeal{*lunch, *dinner}, rows)

	all, err := dayMeals.ListByUser(1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
