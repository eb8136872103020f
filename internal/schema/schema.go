// Package schema converts store records to and from their JSON wire shapes.
//
// Output types carry the identifier fields; input types never do, so a
// client cannot choose or overwrite an id.
package schema

import "planetary_api/internal/domain"

// Planet is the wire representation of a stored planet
type Planet struct {
	PlanetID   uint    `json:"planet_id"`
	PlanetName string  `json:"planet_name"`
	PlanetType string  `json:"planet_type"`
	HomeStar   string  `json:"home_star"`
	Mass       float64 `json:"mass"`
	Radius     float64 `json:"radius"`
	Distance   float64 `json:"distance"`
}

// User is the wire representation of a stored user; the password never leaves the store
type User struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PlanetFromRecord maps a stored planet to its output shape
func PlanetFromRecord(p domain.Planet) Planet {
	return Planet{
		PlanetID:   p.PlanetID,
		PlanetName: p.PlanetName,
		PlanetType: p.PlanetType,
		HomeStar:   p.HomeStar,
		Mass:       p.Mass,
		Radius:     p.Radius,
		Distance:   p.Distance,
	}
}

// PlanetsFromRecords keeps the row order of the query and never returns nil
func PlanetsFromRecords(records []domain.Planet) []Planet {
	out := make([]Planet, len(records))
	for i, p := range records {
		out[i] = PlanetFromRecord(p)
	}
	return out
}

// UserFromRecord maps a stored user to its output shape
func UserFromRecord(u domain.User) User {
	return User{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// PlanetInput is the body accepted by add_planet. The star is read from
// "home_start", the name existing clients already send.
type PlanetInput struct {
	PlanetName string   `json:"planet_name" form:"planet_name" binding:"required"`
	PlanetType string   `json:"planet_type" form:"planet_type" binding:"required"`
	HomeStar   string   `json:"home_start" form:"home_start" binding:"required"`
	Mass       *float64 `json:"mass" form:"mass" binding:"required"`
	Radius     *float64 `json:"radius" form:"radius" binding:"required"`
	Distance   *float64 `json:"distance" form:"distance" binding:"required"`
}

// Record builds the store record; the id is left for the database to assign
func (in PlanetInput) Record() domain.Planet {
	p := domain.Planet{
		PlanetName: in.PlanetName,
		PlanetType: in.PlanetType,
		HomeStar:   in.HomeStar,
	}
	if in.Mass != nil {
		p.Mass = *in.Mass
	}
	if in.Radius != nil {
		p.Radius = *in.Radius
	}
	if in.Distance != nil {
		p.Distance = *in.Distance
	}
	return p
}

// RegisterInput is the body accepted by register
type RegisterInput struct {
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,max=72"`
}

// Record builds the store record with an already hashed password
func (in RegisterInput) Record(passwordHash string) domain.User {
	return domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  passwordHash,
	}
}

// LoginInput is the body accepted by login, as JSON or form fields
type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
