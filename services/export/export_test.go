package export

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"testing"

	"mealtrack-go-api/database"
	"mealtrack-go-api/enums"
	"mealtrack-go-api/repository"
	"mealtrack-go-api/structs"
	"mealtrack-go-api/utils"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*gorm.DB, string) {
	exportPath, err := ioutil.TempDir("", "mealtrack-export")
	require.NoError(t, err)

	var cfg structs.EnviromentModel
	cfg.Authentication.Token = "test-token"
	cfg.Authentication.EncryptionKey = "test-encryption-key"
	cfg.Export.Path = exportPath
	cfg.Export.TimeoutDuration = 5
	utils.EnvConfig = &cfg

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.Mysql = db
	return db, exportPath
}

func TestExportRunWritesFullRecord(t *testing.T) {
	db, exportPath := setupTestDB(t)
	defer db.Close()
	defer os.RemoveAll(exportPath)

	var users repository.UserRepo
	user, err := users.Create("alice", "H1")
	require.NoError(t, err)

	var days repository.DayRepo
	var mealTypes repository.MealTypeRepo
	var dayMeals repository.DayMealRepo
	day, err := days.Create(2024, 10, 12)
	require.NoError(t, err)
	lunchID, err := mealTypes.GetIDByName("lunch")
	require.NoError(t, err)
	_, err = dayMeals.CreateWithMeal(user.ID, day.ID, lunchID, 1, 2)
	require.NoError(t, err)

	service := ExportService{
		exportQueueParam: structs.ExportQueueParam{
			TaskID:      7,
			QueueType:   enums.ExportQueue,
			Credentials: structs.CredentialsItem{Token: "test-token", UserName: "alice", HashedPassword: "H1"},
		},
	}
	result := service.run()
	require.Equal(t, enums.ExportStateSuccess, result.state)
	require.NotEmpty(t, result.filePath)

	raw, err := ioutil.ReadFile(result.filePath)
	require.NoError(t, err)
	var payload structs.ExportPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "alice", payload.User.Name)
	require.Len(t, payload.Meals, 1)
	assert.Equal(t, structs.MealInfo{
		Year: 2024, Month: 10, Day: 12,
		MealType: "lunch", FatLevel: 1, SugarLevel: 2,
	}, payload.Meals[0])
}

func TestExportRunRejectsBadCredentials(t *testing.T) {
	db, exportPath := setupTestDB(t)
	defer db.Close()
	defer os.RemoveAll(exportPath)

	var users repository.UserRepo
	_, err := users.Create("alice", "H1")
	require.NoError(t, err)

	service := ExportService{
		exportQueueParam: structs.ExportQueueParam{
			TaskID:      8,
			QueueType:   enums.ExportQueue,
			Credentials: structs.CredentialsItem{Token: "test-token", UserName: "alice", HashedPassword: "wrong"},
		},
	}
	result := service.run()
	assert.Equal(t, enums.ExportStateInvalidCredentials, result.state)

	files, err := ioutil.ReadDir(exportPath)
	require.NoError(t, err)
	assert.Empty(t, files)
}
