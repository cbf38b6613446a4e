package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// SqliteDB is the embedded store backing local client state: the persisted
// session and the receipt cache.
type SqliteDB struct {
	db *gorm.DB
}

func NewSqliteDB(path string) (*SqliteDB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return &SqliteDB{}, fmt.Errorf("create state dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return &SqliteDB{}, fmt.Errorf("failed to open state database: %w", err)
	}

	return &SqliteDB{
		db: db,
	}, nil
}

func (f *SqliteDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Upsert inserts records, replacing existing rows on primary key conflict.
func (f *SqliteDB) Upsert(records any) error {
	err := f.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(records).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}

	return nil
}

func (f *SqliteDB) GetOneBy(column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *SqliteDB) GetAllBy(column string, value any, entity any) error {
	tx := f.db.Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *SqliteDB) DeleteBy(column string, value any, model any) error {
	tx := f.db.Where(fmt.Sprintf("%s IN ?", column), value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return nil
}
