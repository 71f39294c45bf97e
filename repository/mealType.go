package repository

import (
	"mealtrack-go-api/database"
	"mealtrack-go-api/models"

	"github.com/jinzhu/gorm"
)

// MealTypeRepo reads the static meal type reference data. Matching is
// case-sensitive against the stored values; callers normalize case first.
type MealTypeRepo struct{}

func (r *MealTypeRepo) GetIDByName(name string) (uint, error) {
	var row models.MealType
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("name = ?", name).First(&row).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return row.ID, nil
}

func (r *MealTypeRepo) GetNameByID(mealTypeID uint) (string, error) {
	var row models.MealType
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("id = ?", mealTypeID).First(&row).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return row.Name, nil
}

func (r *MealTypeRepo) GetAll() ([]models.MealType, error) {
	var rows []models.MealType
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
