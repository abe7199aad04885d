// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

// Package keyring stores named cipher keys in a database. It supports the
// same database backends as the rest of the tool's configuration: sqlite
// for local use and postgres for shared deployments.
package keyring

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shamo33/cryptor/kcipher2"
)

// ErrNotFound is returned when a named key does not exist.
var ErrNotFound = errors.New("keyring: key not found")

// Key is a stored cipher key. Material is the raw 16-byte key.
type Key struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Material  []byte `gorm:"not null"`
	CreatedAt time.Time
}

// Keyring is a handle to the key database.
type Keyring struct {
	db *gorm.DB
}

// Open connects to the key database and runs migrations. dbType selects the
// driver, "sqlite" or "postgres"; dsn is passed through to it.
func Open(dbType, dsn string) (*Keyring, error) {
	if dsn == "" {
		return nil, errors.New("keyring: dsn is required")
	}

	var dialector gorm.Dialector
	switch strings.ToLower(dbType) {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("keyring: unsupported database type: %s (must be 'sqlite' or 'postgres')", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("keyring: open database: %w", err)
	}
	if err := db.AutoMigrate(&Key{}); err != nil {
		return nil, fmt.Errorf("keyring: migrate: %w", err)
	}
	return &Keyring{db: db}, nil
}

// Put stores key material under name. Storing an existing name fails.
func (k *Keyring) Put(name string, material []byte) error {
	if name == "" {
		return errors.New("keyring: key name is required")
	}
	if len(material) != kcipher2.KeySize {
		return fmt.Errorf("keyring: key material must be %d bytes, got %d", kcipher2.KeySize, len(material))
	}
	rec := Key{Name: name, Material: append([]byte(nil), material...)}
	if err := k.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("keyring: store %q: %w", name, err)
	}
	return nil
}

// Get returns the key material stored under name.
func (k *Keyring) Get(name string) ([]byte, error) {
	var rec Key
	err := k.db.Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("keyring: fetch %q: %w", name, err)
	}
	return rec.Material, nil
}

// List returns all stored keys, oldest first, without their material.
func (k *Keyring) List() ([]Key, error) {
	var recs []Key
	if err := k.db.Select("id", "name", "created_at").Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("keyring: list: %w", err)
	}
	return recs, nil
}

// Remove deletes the key stored under name.
func (k *Keyring) Remove(name string) error {
	res := k.db.Where("name = ?", name).Delete(&Key{})
	if res.Error != nil {
		return fmt.Errorf("keyring: remove %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}
