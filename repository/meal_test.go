package repository

import (
	"testing"

	"mealtrack-go-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealRepoCreateUpdateGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var meals MealRepo
	created, err := meals.Create(1, 2)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	require.NoError(t, meals.Update(created.ID, 0, 0))

	row, err := meals.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, row.FatLevel)
	assert.Equal(t, 0, row.SugarLevel)

	_, err = meals.GetByID(9999)
	assert.Equal(t, ErrNotFound, err)
}

func TestMealRepoDeleteRemovesLinkAndMeal(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var meals MealRepo
	var dayMeals DayMealRepo
	link, err := dayMeals.CreateWithMeal(1, 2, 3, 1, 1)
	require.NoError(t, err)

	require.NoError(t, meals.Delete(1, 2, 3, link.MealID))

	var linkCount, mealCount int
	require.NoError(t, db.Model(&models.DayMeal{}).Count(&linkCount).Error)
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	assert.Zero(t, linkCount)
	assert.Zero(t, mealCount)
}

func TestMealRepoDeleteMissingLinkTouchesNothing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var meals MealRepo
	var dayMeals DayMealRepo
	link, err := dayMeals.CreateWithMeal(1, 2, 3, 1, 1)
	require.NoError(t, err)

	// different meal type, link does not exist
	err = meals.Delete(1, 2, 4, link.MealID)
	assert.Equal(t, ErrNotFound, err)

	// the existing rows are untouched, especially the meal row
	var linkCount, mealCount int
	require.NoError(t, db.Model(&models.DayMeal{}).Count(&linkCount).Error)
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	assert.Equal(t, 1, linkCount)
	assert.Equal(t, 1, mealCount)
}
