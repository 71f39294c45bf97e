package repository

import (
	"mealtrack-go-api/database"
	"mealtrack-go-api/models"

	"github.com/jinzhu/gorm"
)

// DayMealRepo manages the (user, day, meal type) -> meal link rows. At most
// one link may exist per natural key; the unique index enforces it.
type DayMealRepo struct{}

func (r *DayMealRepo) Get(userID, dayID, mealTypeID uint) (*models.DayMeal, error) {
	var row models.DayMeal
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("fk_user_id = ? AND fk_day_id = ? AND fk_meal_type_id = ?", userID, dayID, mealTypeID).
			First(&row).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a link for an already stored meal. A duplicate natural key
// comes back as ErrDuplicate; the caller turns that into the
// "meal already exists, use edit" answer.
func (r *DayMealRepo) Create(userID, dayID, mealTypeID, mealID uint) (*models.DayMeal, error) {
	err := database.WithRetry(func(db *gorm.DB) error {
		row := models.DayMeal{UserID: userID, DayID: dayID, MealTypeID: mealTypeID, MealID: mealID}
		if err := db.Create(&row).Error; err != nil {
			if database.IsDuplicateErr(err) {
				return ErrDuplicate
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(userID, dayID, mealTypeID)
}

// CreateWithMeal stores a new meal row and its link as one transaction. A
// duplicate link rolls the meal back too, so a conflict never leaves an
// orphan meal behind.
func (r *DayMealRepo) CreateWithMeal(userID, dayID, mealTypeID uint, fatLevel, sugarLevel int) (*models.DayMeal, error) {
	var link models.DayMeal
	err := database.WithRetry(func(db *gorm.DB) error {
		tx := db.Begin()
		if tx.Error != nil {
			return tx.Error
		}
		meal := models.Meal{FatLevel: fatLevel, SugarLevel: sugarLevel}
		if err := tx.Create(&meal).Error; err != nil {
			tx.Rollback()
			return err
		}
		link = models.DayMeal{UserID: userID, DayID: dayID, MealTypeID: mealTypeID, MealID: meal.ID}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			if database.IsDuplicateErr(err) {
				return ErrDuplicate
			}
			return err
		}
		return tx.Commit().Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByUser returns every link a user owns, across all days. Used by the
// export worker to assemble the full record.
func (r *DayMealRepo) ListByUser(userID uint) ([]models.DayMeal, error) {
	var rows []models.DayMeal
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("fk_user_id = ?", userID).Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DayMealRepo) ListByUserAndDay(userID, dayID uint) ([]models.DayMeal, error) {
	var rows []models.DayMeal
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("fk_user_id = ? AND fk_day_id = ?", userID, dayID).Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
