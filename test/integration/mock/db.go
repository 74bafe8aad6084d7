// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *Db
)

// Db wraps a shared in-memory sqlite connection for the integration suite.
// The shared cache keeps the schema alive across the single pooled
// connection; scenarios call Reset between runs instead of reopening.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The map keys are table names, used by the db assertion steps.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := dbConn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset empties every table so each scenario starts from a blank ledger.
func (d *Db) Reset() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
