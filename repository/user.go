package repository

import (
	"mealtrack-go-api/database"
	"mealtrack-go-api/models"
	"mealtrack-go-api/structs"
	"mealtrack-go-api/utils"

	"github.com/jinzhu/gorm"
)

// LoginStatus is the four-way credential check result consumed by the auth
// orchestrator, checked in this precedence order: token, user existence,
// password.
type LoginStatus int

const (
	StatusInvalidToken LoginStatus = iota
	StatusUnknownUser
	StatusInvalidPassword
	StatusOK
)

type UserRepo struct{}

// GetByName looks a user up through the blind name index and decrypts only
// the matched row.
func (r *UserRepo) GetByName(name string) (*models.User, error) {
	key := database.EncryptionKey()
	var user models.User
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("name_hash = ?", utils.NameDigest(key, name)).First(&user).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.decrypt(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByID(userID uint) (*models.User, error) {
	var user models.User
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Where("id = ?", userID).First(&user).Error
	})
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.decrypt(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetAllIDs() ([]uint, error) {
	var ids []uint
	err := database.WithRetry(func(db *gorm.DB) error {
		return db.Model(&models.User{}).Pluck("id", &ids).Error
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Create registers a new user. The pre-check keeps the common duplicate case
// cheap, but the unique index on name_hash is the authoritative signal under
// concurrent registration.
func (r *UserRepo) Create(name, hashedPassword string) (*models.User, error) {
	key := database.EncryptionKey()
	var created models.User
	err := database.WithRetry(func(db *gorm.DB) error {
		digest := utils.NameDigest(key, name)
		var existing models.User
		err := db.Where("name_hash = ?", digest).First(&existing).Error
		if err == nil {
			return ErrUserExists
		}
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}

		nameEncr, cryptErr := utils.EncryptName(key, name)
		if cryptErr != nil {
			return cryptErr
		}
		user := models.User{NameEncr: nameEncr, NameHash: digest, HashedPassword: hashedPassword}
		if err := db.Create(&user).Error; err != nil {
			if database.IsDuplicateErr(err) {
				return ErrUserExists
			}
			return err
		}
		return db.Where("id = ?", user.ID).First(&created).Error
	})
	if err != nil {
		return nil, err
	}
	if err := r.decrypt(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepo) CreateFromCredentials(credentials structs.CredentialsItem) (*models.User, error) {
	return r.Create(credentials.UserName, credentials.HashedPassword)
}

// CheckPassword validates the credentials triple. A store failure after the
// retry budget comes back as the error; every expected outcome is a status.
func (r *UserRepo) CheckPassword(credentials structs.CredentialsItem) (LoginStatus, error) {
	if !database.IsTokenValid(credentials.Token) {
		return StatusInvalidToken, nil
	}
	user, err := r.GetByName(credentials.UserName)
	if err != nil {
		if err == ErrNotFound {
			return StatusUnknownUser, nil
		}
		return StatusUnknownUser, err
	}
	if user.HashedPassword == credentials.HashedPassword {
		return StatusOK, nil
	}
	return StatusInvalidPassword, nil
}

func (r *UserRepo) decrypt(user *models.User) error {
	if len(user.NameEncr) == 0 {
		user.Name = ""
		return nil
	}
	name, err := utils.DecryptName(database.EncryptionKey(), user.NameEncr)
	if err != nil {
		return err
	}
	user.Name = name
	return nil
}
