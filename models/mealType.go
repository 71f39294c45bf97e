package models

type MealType struct {
	ID   uint   `gorm:"column:id;primary_key" json:"ID"`
	Name string `gorm:"column:name" json:"name"`
}

// TableName sets the insert table name for this struct type
func (m *MealType) TableName() string {
	return "meal_types"
}
