package repository

import (
	"testing"

	"mealtrack-go-api/database"
	"mealtrack-go-api/structs"
	"mealtrack-go-api/utils"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestDB swaps the shared handle for an in-memory sqlite database with
// the full relational shape and seeded meal types.
func setupTestDB(t *testing.T) *gorm.DB {
	var cfg structs.EnviromentModel
	cfg.Authentication.Token = "test-token"
	cfg.Authentication.EncryptionKey = "test-encryption-key"
	utils.EnvConfig = &cfg

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// one connection, otherwise every pooled connection gets its own
	// empty in-memory database
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.Mysql = db
	return db
}

func validCredentials(userName, hashedPassword string) structs.CredentialsItem {
	return structs.CredentialsItem{
		Token:          "test-token",
		UserName:       userName,
		HashedPassword: hashedPassword,
	}
}

func withToken(credentials structs.CredentialsItem, token string) structs.CredentialsItem {
	credentials.Token = token
	return credentials
}
