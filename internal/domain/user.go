package domain

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey"`                    // Primary key
	FirstName string `gorm:"not null"`                      // First name
	LastName  string `gorm:"not null"`                      // Last name
	Email     string `gorm:"size:191;uniqueIndex;not null"` // Login key, unique across users
	Password  string `gorm:"not null"`                      // Bcrypt hash of the password
}
