package models

type User struct {
	ID             uint   `gorm:"column:id;primary_key" json:"ID"`
	NameEncr       []byte `gorm:"column:name_encr" json:"-"`
	NameHash       string `gorm:"column:name_hash;unique_index" json:"-"`
	HashedPassword string `gorm:"column:hashed_password" json:"hashedPassword"`

	// Decrypted form of NameEncr, filled in by the repository after a read.
	Name string `gorm:"-" json:"name"`
}

// TableName sets the insert table name for this struct type
func (u *User) TableName() string {
	return "users"
}
