package repository

import (
	"testing"

	"mealtrack-go-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var users UserRepo
	created, err := users.Create("alice", "H1")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Name)
	assert.Equal(t, "H1", created.HashedPassword)

	// name is never stored in the clear
	var raw models.User
	require.NoError(t, db.Where("id = ?", created.ID).First(&raw).Error)
	assert.NotContains(t, string(raw.NameEncr), "alice")
	assert.NotEmpty(t, raw.NameHash)

	byName, err := users.GetByName("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := users.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Name)

	_, err = users.GetByName("bob")
	assert.Equal(t, ErrNotFound, err)
}

func TestUserRepoCreateDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var users UserRepo
	first, err := users.Create("alice", "H1")
	require.NoError(t, err)

	_, err = users.Create("alice", "H2")
	assert.Equal(t, ErrUserExists, err)

	// first registration is unchanged
	again, err := users.GetByName("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "H1", again.HashedPassword)

	var count int
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, 1, count)
}

func TestUserRepoGetAllIDs(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var users UserRepo
	ids, err := users.GetAllIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	a, _ := users.Create("alice", "H1")
	b, _ := users.Create("bob", "H2")

	ids, err = users.GetAllIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{a.ID, b.ID}, ids)
}

func TestUserRepoCheckPasswordPrecedence(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var users UserRepo
	_, err := users.Create("alice", "H1")
	require.NoError(t, err)

	// bad token wins over everything else
	status, err := users.CheckPassword(withToken(validCredentials("alice", "H1"), "wrong"))
	require.NoError(t, err)
	assert.Equal(t, StatusInvalidToken, status)

	status, err = users.CheckPassword(withToken(validCredentials("nobody", "H1"), "wrong"))
	require.NoError(t, err)
	assert.Equal(t, StatusInvalidToken, status)

	// unknown user before password comparison
	status, err = users.CheckPassword(validCredentials("nobody", "H1"))
	require.NoError(t, err)
	assert.Equal(t, StatusUnknownUser, status)

	status, err = users.CheckPassword(validCredentials("alice", "H2"))
	require.NoError(t, err)
	assert.Equal(t, StatusInvalidPassword, status)

	status, err = users.CheckPassword(validCredentials("alice", "H1"))
	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
}
