package database

import (
	"mealtrack-go-api/enums"
	"mealtrack-go-api/models"

	"github.com/jinzhu/gorm"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

// Migrate creates the relational shape and seeds the static meal type
// reference data. Uniqueness lives in store-level indexes so concurrent
// check-then-insert callers get an authoritative conflict from the store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Day{},
		&models.MealType{},
		&models.Meal{},
		&models.DayMeal{},
		&models.ActivityLog{},
	).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Day{}).AddUniqueIndex("uniq_days_date", "year", "month", "day").Error; err != nil {
		return err
	}
	if err := db.Model(&models.DayMeal{}).AddUniqueIndex("uniq_day_meals_slot", "fk_user_id", "fk_day_id", "fk_meal_type_id").Error; err != nil {
		return err
	}
	return seedMealTypes(db)
}

func seedMealTypes(db *gorm.DB) error {
	var count int
	if err := db.Model(&models.MealType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	var rows []interface{}
	for _, name := range []string{
		enums.MealTypeBreakfast,
		enums.MealTypeLunch,
		enums.MealTypeDinner,
		enums.MealTypeSnacks,
	} {
		rows = append(rows, models.MealType{Name: name})
	}
	return gormbulk.BulkInsert(db, rows, 2000)
}
