package repository

import (
	"mealtrack-go-api/database"
	"mealtrack-go-api/models"

	"github.com/jinzhu/gorm"
)

type DayRepo struct{}

func (r *DayRepo) GetByDate(year, month, day int) (*models.Day, error) {
	var row models.Day
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("year = ? AND month = ? AND day = ?", year, month, day).First(&row).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *DayRepo) GetByID(dayID uint) (*models.Day, error) {
	var row models.Day
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("id = ?", dayID).First(&row).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Create is get-or-create: a day that already exists is returned as is, so
// the call stays idempotent under retry. A duplicate-key insert from a
// concurrent caller resolves to the winning row.
func (r *DayRepo) Create(year, month, day int) (*models.Day, error) {
	var row models.Day
	err := database.WithRetry(func(db *gorm.DB) error {
		err := db.Where("year = ? AND month = ? AND day = ?", year, month, day).First(&row).Error
		if err == nil {
			return nil
		}
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}
		fresh := models.Day{Year: year, Month: month, Day: day}
		if err := db.Create(&fresh).Error; err != nil {
			if database.IsDuplicateErr(err) {
				return db.Where("year = ? AND month = ? AND day = ?", year, month, day).First(&row).Error
			}
			return err
		}
		row = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
