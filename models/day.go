package models

type Day struct {
	ID    uint `gorm:"column:id;primary_key" json:"ID"`
	Year  int  `gorm:"column:year" json:"year"`
	Month int  `gorm:"column:month" json:"month"`
	Day   int  `gorm:"column:day" json:"day"`
}

// TableName sets the insert table name for this struct type
func (d *Day) TableName() string {
	return "days"
}
