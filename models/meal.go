package models

type Meal struct {
	ID         uint `gorm:"column:id;primary_key" json:"ID"`
	FatLevel   int  `gorm:"column:fat_level" json:"fat_level"`
	SugarLevel int  `gorm:"column:sugar_level" json:"sugar_level"`
}

// TableName sets the insert table name for this struct type
func (m *Meal) TableName() string {
	return "meals"
}
