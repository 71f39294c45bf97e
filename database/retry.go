package database

import (
	"database/sql/driver"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
)

// reconnect is indirected so the retry bound can be exercised in tests.
var reconnect = Reconnect

const maxAttempts = 2

// WithRetry runs op against the shared handle. When the first attempt fails
// with a connection-level error it reconnects and runs op exactly once more;
// a second failure is terminal and returned to the caller. Row-level
// conditions (not found, duplicate key) are never retried.
func WithRetry(op func(db *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = op(DB()); err == nil || !IsTransientErr(err) {
			return err
		}
		if attempt+1 < maxAttempts {
			if reconnectErr := reconnect(); reconnectErr != nil {
				return err
			}
		}
	}
	return err
}

// IsTransientErr reports whether err looks like a dropped or stale
// connection rather than a row-level condition.
func IsTransientErr(err error) bool {
	if err == nil || gorm.IsRecordNotFoundError(err) || IsDuplicateErr(err) {
		return false
	}
	if err == driver.ErrBadConn || err == mysql.ErrInvalidConn {
		return true
	}
	msg := err.Error()
	for _, hint := range []string{
		"invalid connection",
		"bad connection",
		"broken pipe",
		"connection refused",
		"connection reset",
		"database is closed",
		"closed network connection",
	} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// IsDuplicateErr reports whether err is a unique-constraint violation. The
// constraint violation is the authoritative conflict signal for user names
// and day-meal links.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		return mysqlErr.Number == 1062
	}
	// sqlite (test dialect) has no typed error in this driver version.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
