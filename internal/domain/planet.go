package domain

// Planet Model
type Planet struct {
	PlanetID   uint    `gorm:"primaryKey"`                    // Primary key
	PlanetName string  `gorm:"size:191;uniqueIndex;not null"` // Unique planet name
	PlanetType string  `gorm:"size:64"`                       // Classification, e.g. "Class M"
	HomeStar   string  `gorm:"size:64"`                       // Star the planet orbits
	Mass       float64 `gorm:"not null"`                      // Mass in kilograms
	Radius     float64 `gorm:"not null"`                      // Radius in miles
	Distance   float64 `gorm:"not null"`                      // Distance from the home star in miles
}
