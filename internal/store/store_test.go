package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"planetary_api/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // every query must hit the same in-memory database
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Planet{}))
	return db
}

func TestCreatePlanet_DuplicateName(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	first := &domain.Planet{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6}
	require.NoError(t, s.CreatePlanet(ctx, first))
	assert.NotZero(t, first.PlanetID)

	second := &domain.Planet{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sol"}
	err := s.CreatePlanet(ctx, second)
	require.ErrorIs(t, err, ErrDuplicate)

	var n int64
	require.NoError(t, db.Model(&domain.Planet{}).Where("planet_name = ?", "Mercury").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestFindPlanet(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	p := &domain.Planet{PlanetName: "Venus", PlanetType: "Class K", HomeStar: "Sol", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6}
	require.NoError(t, s.CreatePlanet(ctx, p))

	got, err := s.FindPlanet(ctx, p.PlanetID)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)

	_, err = s.FindPlanet(ctx, p.PlanetID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPlanets_EmptyIsNotNil(t *testing.T) {
	s := New(setupDB(t))

	planets, err := s.ListPlanets(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, planets)
	assert.Empty(t, planets)
}

func TestUsers(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	u := &domain.User{FirstName: "William", LastName: "Herschel", Email: "test@test.com", Password: "hash"}
	require.NoError(t, s.CreateUser(ctx, u))

	dup := &domain.User{FirstName: "Other", LastName: "Person", Email: "test@test.com", Password: "hash"}
	require.ErrorIs(t, s.CreateUser(ctx, dup), ErrDuplicate)

	got, err := s.FindUserByEmail(ctx, "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.FindUserByEmail(ctx, "nobody@test.com")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.ResetPassword(ctx, u.ID, "new-hash", func() error { return nil }))
	got, err = s.FindUserByEmail(ctx, "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.Password)

	assert.ErrorIs(t, s.ResetPassword(ctx, u.ID+50, "x", func() error { return nil }), ErrNotFound)
}

func TestResetPassword_SendFailureKeepsOldHash(t *testing.T) {
	s := New(setupDB(t))
	ctx := context.Background()

	u := &domain.User{FirstName: "William", LastName: "Herschel", Email: "test@test.com", Password: "old-hash"}
	require.NoError(t, s.CreateUser(ctx, u))

	sendErr := errors.New("smtp down")
	err := s.ResetPassword(ctx, u.ID, "new-hash", func() error { return sendErr })
	require.ErrorIs(t, err, sendErr)

	got, err := s.FindUserByEmail(ctx, "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, "old-hash", got.Password)
}

func TestTranslate_DriverMessages(t *testing.T) {
	for _, msg := range []string{
		"UNIQUE constraint failed: planets.planet_name",
		"Error 1062 (23000): Duplicate entry 'Mars' for key 'planets.idx_planets_planet_name'",
		"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)",
	} {
		assert.ErrorIs(t, translate(errors.New(msg)), ErrDuplicate, msg)
	}
	assert.NotErrorIs(t, translate(errors.New("connection refused")), ErrDuplicate)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	assert.Error(t, err)
}
