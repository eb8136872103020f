package db

import (
	"fmt"                           // Error wrapping
	"planetary_api/internal/domain" // Importing domain models
	"planetary_api/internal/utils"  // Password hashing

	"gorm.io/gorm" // GORM ORM library
)

// models lists every table owned by the service
var models = []any{&domain.User{}, &domain.Planet{}}

// Create creates the tables, their unique indexes and any missing columns
func Create(db *gorm.DB) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// Drop removes every table
func Drop(db *gorm.DB) error {
	if err := db.Migrator().DropTable(models...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}

// SeedPlanets are the planets inserted by Seed
var SeedPlanets = []domain.Planet{
	{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
	{PlanetName: "Venus", PlanetType: "Class K", HomeStar: "Sol", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6},
	{PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sol", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6},
}

// SeedUserPassword is the plaintext password of the seeded test user
const SeedUserPassword = "P@ssw0rd"

// Seed inserts the sample planets and a test user in one transaction and
// returns the created user
func Seed(db *gorm.DB) (*domain.User, error) {
	hash, err := utils.HashPassword(SeedUserPassword)
	if err != nil {
		return nil, fmt.Errorf("seed: hash password: %w", err)
	}
	user := domain.User{FirstName: "William", LastName: "Herschel", Email: "test@test.com", Password: hash}
	planets := make([]domain.Planet, len(SeedPlanets))
	copy(planets, SeedPlanets) // Keep the package level rows free of assigned ids

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&planets).Error; err != nil {
			return err // Return error to rollback
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return &user, nil
}
