package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared connection handle, set by Init.
var DB *gorm.DB

// Init opens the database connection and runs auto migration.
// A non-empty databaseURL selects the hosted Postgres instance; otherwise
// databasePath selects a local sqlite file (defaulting to listeningclub.db).
func Init(databaseURL, databasePath string) error {
	dialector, err := openDialector(databaseURL, databasePath)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate creates or updates the tables for all core models.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&ContactSubmission{},
		&Event{},
		&Faq{},
		&Founder{},
		&Volunteer{},
		&GalleryImage{},
		&ServiceItem{},
		&Testimonial{},
		&Quote{},
		&BannerSlide{},
		&Post{},
		&Setting{},
		&ContactInfo{},
	)
}

func openDialector(databaseURL, databasePath string) (gorm.Dialector, error) {
	if url := strings.TrimSpace(databaseURL); url != "" {
		return postgres.Open(url), nil
	}

	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "listeningclub.db"
	}
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}
	return sqlite.Open(path), nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
