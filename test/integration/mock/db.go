package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Table binds a table name used in feature files to its gorm model.
type Table struct {
	Name  string
	Model any
}

type Db struct {
	DbConn *gorm.DB
	tables []Table
}

// NewDb opens a private in-memory SQLite database and migrates the tables.
// Tables must be listed parents first so foreign keys resolve.
func NewDb(tables ...Table) *Db {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}

	// every pooled connection to :memory: would otherwise see its own empty database
	conn.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open sqlite database: " + err.Error())
	}

	d := &Db{DbConn: dbConn, tables: tables}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %s", err.Error()))
	}

	return d
}

func (d *Db) migrate() error {
	for _, table := range d.tables {
		if err := d.DbConn.AutoMigrate(table.Model); err != nil {
			return fmt.Errorf("migrate %s: %w", table.Name, err)
		}
		if !d.DbConn.Migrator().HasTable(table.Model) {
			return fmt.Errorf("table %s was not created", table.Name)
		}
	}
	return nil
}

// ClearDB hard-deletes every row, children first.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for i := len(d.tables) - 1; i >= 0; i-- {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Unscoped().
				Delete(d.tables[i].Model).Error
			if err != nil {
				return fmt.Errorf("clear %s: %w", d.tables[i].Name, err)
			}
		}
		return nil
	})
}

func (d *Db) GetModel(table string) (any, bool) {
	for _, t := range d.tables {
		if t.Name == table {
			return t.Model, true
		}
	}
	return nil, false
}
