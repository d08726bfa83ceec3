package db

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"customers/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init opens the SQLite database at the given path and migrates the schema.
// In-memory DSNs (used by tests) skip the directory handling.
func Init(dbPath string) (*gorm.DB, error) {
	if !strings.Contains(dbPath, "memory") {
		dir := filepath.Dir(dbPath)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}
	}

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connected successfully at", dbPath)

	if err := database.AutoMigrate(
		&models.Customer{}, &models.Product{}, &models.ProductCategory{},
		&models.ProductCategoryMap{}, &models.Order{}, &models.OrderItem{},
	); err != nil {
		return nil, err
	}
	return database, nil
}
