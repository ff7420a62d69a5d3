package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"speedboat-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Speedboat{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedData populates the store with sample speedboats for development.
// A store that already has rows is left alone.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Speedboat{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	sampleBoats := []models.Speedboat{
		{
			Brand:          "Yamaha",
			ModelNumber:    "SX190",
			ImageURL:       "https://picsum.photos/300/200?random=1",
			WholesalePrice: 28999.50,
			RetailPrice:    34999.99,
			InStock:        true,
		},
		{
			Brand:          "Sea Ray",
			ModelNumber:    "SPX-210",
			ImageURL:       "https://picsum.photos/300/200?random=2",
			WholesalePrice: 51200.00,
			RetailPrice:    62450.00,
			InStock:        false,
		},
	}

	for _, boat := range sampleBoats {
		if err := db.Create(&boat).Error; err != nil {
			fmt.Printf("Warning: Could not create sample speedboat %s: %v\n", boat.ModelNumber, err)
		}
	}

	fmt.Println("Database seeded with sample speedboats")
	return nil
}
