package database

import (
	"fmt"
	"sync"

	"mealtrack-go-api/utils"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
)

var (
	Mysql *gorm.DB
	mutex = &sync.Mutex{}
)

func InitDatabasePool() {
	db, err := open()
	if err != nil {
		panic(err)
	}
	mutex.Lock()
	Mysql = db
	mutex.Unlock()
}

// DB returns the shared handle. Reconnect may swap it at any time, so
// callers must not hold on to the returned value across operations.
func DB() *gorm.DB {
	mutex.Lock()
	defer mutex.Unlock()
	return Mysql
}

// Reconnect re-reads the store credentials from configuration and replaces
// the shared handle. Safe to call repeatedly; statements in flight on the
// old handle become invalid.
func Reconnect() error {
	var envService utils.EnvService
	envService.ReloadEnv()

	db, err := open()
	if err != nil {
		return err
	}
	mutex.Lock()
	old := Mysql
	Mysql = db
	mutex.Unlock()
	if old != nil {
		old.Close()
	}
	fmt.Println("Database: Updated own class vars")
	return nil
}

func open() (*gorm.DB, error) {
	cfg := utils.EnvConfig.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Db, cfg.Params)
	db, err := gorm.Open(cfg.Client, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database fail: %s", err.Error())
	}
	db.DB().SetMaxIdleConns(int(cfg.MaxIdle))
	db.DB().SetMaxOpenConns(int(cfg.MaxOpenConn))
	db.LogMode(cfg.LogEnable == 1)
	return db, nil
}

// IsTokenValid compares against the single pre-shared token, not any
// per-user password.
func IsTokenValid(token string) bool {
	return token == utils.EnvConfig.Authentication.Token
}

// EncryptionKey is the symmetric key used for the users.name_encr column.
func EncryptionKey() string {
	return utils.EnvConfig.Authentication.EncryptionKey
}
