// event-app10/config/database.go

package config

import (
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection. The pgx-backed driver accepts
// both postgres:// and postgresql:// scheme DSNs.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("database connection failed", "error", err)
		return nil, err
	}

	slog.Info("database connection established")
	return db, nil
}
