package database

import (
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
)

func TestWithRetryReconnectsExactlyOnce(t *testing.T) {
	reconnects := 0
	original := reconnect
	reconnect = func() error {
		reconnects++
		return nil
	}
	defer func() { reconnect = original }()

	attempts := 0
	err := WithRetry(func(db *gorm.DB) error {
		attempts++
		return driver.ErrBadConn
	})

	// the store fails on every call: one reconnect, two attempts, then the
	// failure surfaces
	assert.Equal(t, driver.ErrBadConn, err)
	assert.Equal(t, 1, reconnects)
	assert.Equal(t, 2, attempts)
}

func TestWithRetrySecondAttemptSucceeds(t *testing.T) {
	original := reconnect
	reconnect = func() error { return nil }
	defer func() { reconnect = original }()

	attempts := 0
	err := WithRetry(func(db *gorm.DB) error {
		attempts++
		if attempts == 1 {
			return mysql.ErrInvalidConn
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestWithRetrySkipsRowLevelConditions(t *testing.T) {
	reconnects := 0
	original := reconnect
	reconnect = func() error {
		reconnects++
		return nil
	}
	defer func() { reconnect = original }()

	attempts := 0
	err := WithRetry(func(db *gorm.DB) error {
		attempts++
		return gorm.ErrRecordNotFound
	})

	assert.Equal(t, gorm.ErrRecordNotFound, err)
	assert.Zero(t, reconnects)
	assert.Equal(t, 1, attempts)
}

func TestWithRetryGivesUpWhenReconnectFails(t *testing.T) {
	original := reconnect
	reconnect = func() error { return errors.New("still down") }
	defer func() { reconnect = original }()

	attempts := 0
	err := WithRetry(func(db *gorm.DB) error {
		attempts++
		return driver.ErrBadConn
	})

	assert.Equal(t, driver.ErrBadConn, err)
	assert.Equal(t, 1, attempts)
}

func TestIsTransientErr(t *testing.T) {
	assert.True(t, IsTransientErr(driver.ErrBadConn))
	assert.True(t, IsTransientErr(mysql.ErrInvalidConn))
	assert.True(t, IsTransientErr(errors.New("write tcp 10.0.0.1:3306: broken pipe")))
	assert.False(t, IsTransientErr(nil))
	assert.False(t, IsTransientErr(gorm.ErrRecordNotFound))
	assert.False(t, IsTransientErr(errors.New("UNIQUE constraint failed: day_meals.fk_user_id")))
	assert.False(t, IsTransientErr(errors.New("some application error")))
}

func TestIsDuplicateErr(t *testing.T) {
	assert.True(t, IsDuplicateErr(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, IsDuplicateErr(errors.New("UNIQUE constraint failed: users.name_hash")))
	assert.False(t, IsDuplicateErr(&mysql.MySQLError{Number: 1045, Message: "Access denied"}))
	assert.False(t, IsDuplicateErr(nil))
	assert.False(t, IsDuplicateErr(errors.New("record not found")))
}
