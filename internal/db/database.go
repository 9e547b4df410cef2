package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prepwise-backend/internal/config"
	"prepwise-backend/utilities"
)

var database *gorm.DB

// InitDBFromConfig opens the Postgres connection described by the DB
// section of the XML config. When INITIALIZE is false the archive is
// disabled and GetDB returns nil; callers must tolerate that.
func InitDBFromConfig(cfg *config.APIConfig) {
	if !cfg.DB.Initialize {
		utilities.Warn("DB initialization disabled; report archive is off")
		return
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.DB.Host, cfg.DB.Username, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port, cfg.DB.SSLMode)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		utilities.Error("Failed to connect to database: %v", err)
		return
	}

	sqlDB, err := conn.DB()
	if err == nil {
		if cfg.DB.Pool.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
		}
		if cfg.DB.Pool.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
		}
		if cfg.DB.Pool.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)
		}
	}

	database = conn
}

// GetDB returns the shared connection, or nil when the archive is
// disabled.
func GetDB() *gorm.DB {
	return database
}
