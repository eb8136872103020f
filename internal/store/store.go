// Package store is the data access layer over GORM. Handlers depend on the
// UserStore and PlanetStore interfaces and never touch *gorm.DB directly.
package store

import (
	"context" // Request scoped queries
	"errors"  // Error wrapping and matching
	"strings" // Driver error inspection

	"planetary_api/internal/domain" // Store records

	"gorm.io/gorm" // GORM ORM library
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("store: duplicate key")
)

// UserStore persists user accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ResetPassword(ctx context.Context, userID uint, hash string, send func() error) error
}

// PlanetStore persists planets
type PlanetStore interface {
	CreatePlanet(ctx context.Context, planet *domain.Planet) error
	FindPlanet(ctx context.Context, id uint) (*domain.Planet, error)
	ListPlanets(ctx context.Context) ([]domain.Planet, error)
}

// Store implements UserStore and PlanetStore on a GORM handle
type Store struct {
	db *gorm.DB
}

// New wraps an open GORM handle
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser inserts a user; a taken email yields ErrDuplicate
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

// FindUserByEmail looks a user up by its login key
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ResetPassword stores a new password hash and runs send inside the same
// transaction. The previous hash is kept when send fails.
func (s *Store) ResetPassword(ctx context.Context, userID uint, hash string, send func() error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.User{}).Where("id = ?", userID).Update("password", hash)
		if res.Error != nil {
			return translate(res.Error) // Return error to rollback
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return send() // A send error rolls the update back
	})
}

// CreatePlanet inserts a planet; a taken name yields ErrDuplicate
func (s *Store) CreatePlanet(ctx context.Context, planet *domain.Planet) error {
	return translate(s.db.WithContext(ctx).Create(planet).Error)
}

// FindPlanet fetches a planet by primary key
func (s *Store) FindPlanet(ctx context.Context, id uint) (*domain.Planet, error) {
	var planet domain.Planet
	if err := s.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, translate(err)
	}
	return &planet, nil
}

// ListPlanets returns every planet in storage order
func (s *Store) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	planets := make([]domain.Planet, 0)
	if err := s.db.WithContext(ctx).Find(&planets).Error; err != nil {
		return nil, translate(err)
	}
	return planets, nil
}

// translate maps GORM and driver errors onto the store sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

// uniqueViolations are driver messages for a unique constraint failure
var uniqueViolations = []string{
	"UNIQUE constraint failed", // sqlite
	"Duplicate entry",          // mysql
	"SQLSTATE 23505",           // postgres
}

// isUniqueViolation catches drivers that do not implement gorm's error translator
func isUniqueViolation(err error) bool {
	msg := err.Error()
	for _, marker := range uniqueViolations {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
