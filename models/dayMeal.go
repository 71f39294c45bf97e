package models

type DayMeal struct {
	UserID     uint `gorm:"column:fk_user_id" json:"fk_user_id"`
	DayID      uint `gorm:"column:fk_day_id" json:"fk_day_id"`
	MealTypeID uint `gorm:"column:fk_meal_type_id" json:"fk_meal_type_id"`
	MealID     uint `gorm:"column:fk_meal_id" json:"fk_meal_id"`
}

// TableName sets the insert table name for this struct type
func (d *DayMeal) TableName() string {
	return "day_meals"
}
