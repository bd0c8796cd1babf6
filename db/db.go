// Package db is the persisted key/value store credentials live in: a small
// sqlite3 database file, one row per setting.
package db

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/amonks/lineup/data"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DB represents our sqlite3 database file.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// ErrNotSet is returned by Get for a key that has no value.
var ErrNotSet = errors.New("not set")

// Open returns a connection to a migrated sqlite3 database file on disk,
// creating the file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// Get returns the value stored under key, or an error wrapping ErrNotSet.
func (db *DB) Get(key string) (string, error) {
	var settings []data.Setting
	if err := db.
		Where("key = ?", key).
		Limit(1).
		Find(&settings).
		Error; err != nil {
		return "", fmt.Errorf("error getting setting '%s': %w", key, err)
	}
	if len(settings) == 0 {
		return "", fmt.Errorf("setting '%s': %w", key, ErrNotSet)
	}
	return settings[0].Value, nil
}

// Set stores value under key, replacing any existing value.
func (db *DB) Set(key, value string) error {
	if err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&data.Setting{Key: key, Value: value}).
		Error; err != nil {
		return fmt.Errorf("error setting '%s': %w", key, err)
	}
	return nil
}

func (db *DB) Delete(key string) error {
	if err := db.
		Where("key = ?", key).
		Delete(&data.Setting{}).
		Error; err != nil {
		return fmt.Errorf("error deleting setting '%s': %w", key, err)
	}
	return nil
}

// Keys lists every key with a value, sorted.
func (db *DB) Keys() ([]string, error) {
	keys := []string{}
	if err := db.
		Model(&data.Setting{}).
		Order("key").
		Pluck("key", &keys).
		Error; err != nil {
		return nil, fmt.Errorf("error listing settings: %w", err)
	}
	return keys, nil
}
