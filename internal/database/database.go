package database

import (
	"log/slog"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the store named by dsn. An empty dsn falls back to a local
// SQLite file so the services run without any external database. Postgres
// DSNs are recognised by their scheme or key=value form.
func Connect(dsn, fallbackFile string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = fallbackFile
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	slog.Info("database connected", "dialect", db.Dialector.Name())
	return db, nil
}

// Migrate creates tables for the given models if they do not exist yet.
func Migrate(db *gorm.DB, entities ...any) error {
	return db.AutoMigrate(entities...)
}
