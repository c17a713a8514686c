package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the hosted store. DB_DRIVER=sqlite switches to a local file
// database for single-terminal or development use; the default is the shared
// MySQL instance the terminals reconcile against.
func InitDB() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := getenv("DB_PATH", "cosmo_pos.db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getenv("DB_USER", "root"),
		os.Getenv("DB_PASS"),
		getenv("DB_HOST", "127.0.0.1"),
		getenv("DB_PORT", "3306"),
		getenv("DB_NAME", "cosmo_pos"),
	)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// DataDir is where terminal-local settings blobs live.
func DataDir() string {
	return getenv("DATA_DIR", "data")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
