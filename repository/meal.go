package repository

import (
	"mealtrack-go-api/database"
	"mealtrack-go-api/models"

	"github.com/jinzhu/gorm"
)

type MealRepo struct{}

func (r *MealRepo) Create(fatLevel, sugarLevel int) (*models.Meal, error) {
	row := models.Meal{FatLevel: fatLevel, SugarLevel: sugarLevel}
	err := database.WithRetry(func(db *gorm.DB) error {
		row.ID = 0
		return db.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *MealRepo) GetByID(mealID uint) (*models.Meal, error) {
	var row models.Meal
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("id = ?", mealID).First(&row).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Update overwrites both levels unconditionally.
func (r *MealRepo) Update(mealID uint, fatLevel, sugarLevel int) error {
	return database.WithRetry(func(db *gorm.DB) error {
		return db.Model(&models.Meal{}).Where("id = ?", mealID).
			Updates(map[string]interface{}{"fat_level": fatLevel, "sugar_level": sugarLevel}).Error
	})
}

// Delete removes a meal together with its day-meal link in one transaction.
// The link row goes first: when it is already gone the meal row is left
// untouched and ErrNotFound is returned, so a meal still referenced by some
// other link never gets deleted by mistake.
func (r *MealRepo) Delete(userID, dayID, mealTypeID, mealID uint) error {
	return database.WithRetry(func(db *gorm.DB) error {
		tx := db.Begin()
		if tx.Error != nil {
			return tx.Error
		}
		res := tx.Where("fk_user_id = ? AND fk_day_id = ? AND fk_meal_type_id = ?", userID, dayID, mealTypeID).
			Delete(&models.DayMeal{})
		if res.Error != nil {
			tx.Rollback()
			return res.Error
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			return ErrNotFound
		}
		if err := tx.Where("id = ?", mealID).Delete(&models.Meal{}).Error; err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit().Error
	})
}
