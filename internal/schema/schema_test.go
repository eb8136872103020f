package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planetary_api/internal/domain"
)

func TestPlanetFromRecord_WireNames(t *testing.T) {
	p := domain.Planet{PlanetID: 3, PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sol", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6}

	b, err := json.Marshal(PlanetFromRecord(p))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Len(t, got, 7)
	assert.Equal(t, float64(3), got["planet_id"])
	assert.Equal(t, "Earth", got["planet_name"])
	assert.Equal(t, "Class M", got["planet_type"])
	assert.Equal(t, "Sol", got["home_star"])
	assert.Equal(t, 5.972e24, got["mass"])
}

func TestPlanetsFromRecords_KeepsOrder(t *testing.T) {
	assert.NotNil(t, PlanetsFromRecords(nil))

	out := PlanetsFromRecords([]domain.Planet{{PlanetID: 2, PlanetName: "Venus"}, {PlanetID: 1, PlanetName: "Mercury"}})
	require.Len(t, out, 2)
	assert.Equal(t, "Venus", out[0].PlanetName)
	assert.Equal(t, "Mercury", out[1].PlanetName)
}

func TestPlanetInput_IgnoresIdentifier(t *testing.T) {
	body := `{"planet_id": 99, "planet_name": "Mars", "planet_type": "Class K", "home_start": "Sol", "mass": 6.39e23, "radius": 2106, "distance": 141.6e6}`

	var in PlanetInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	rec := in.Record()
	assert.Zero(t, rec.PlanetID)
	assert.Equal(t, "Sol", rec.HomeStar)
	assert.Equal(t, 2106.0, rec.Radius)
}

func TestUserFromRecord_OmitsPassword(t *testing.T) {
	u := domain.User{ID: 1, FirstName: "William", LastName: "Herschel", Email: "test@test.com", Password: "secret"}

	b, err := json.Marshal(UserFromRecord(u))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.Contains(t, string(b), `"email":"test@test.com"`)
}

func TestRegisterInput_Record(t *testing.T) {
	in := RegisterInput{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "plain"}
	rec := in.Record("hashed")
	assert.Equal(t, "hashed", rec.Password)
	assert.Equal(t, "a@b.com", rec.Email)
}
