// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps an in-memory sqlite database migrated with the application models.
// The suite shares one connection; Reset gives every scenario a clean ledger.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb returns the shared in-memory test database, opening and migrating it
// on first use.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := []any{&model.UserModel{}, &model.TransactionModel{}}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn, models: models}
}

// Reset empties every table and restarts identifier sequences.
func (d *Db) Reset() error {
	for _, m := range d.models {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(m); err != nil {
			return err
		}
		err := d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}
