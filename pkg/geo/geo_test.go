package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceSamePointIsZero(t *testing.T) {
	p := Coordinates{Latitude: 4.5798467, Longitude: -74.1587685}
	require.Zero(t, Distance(p, p))
}

func TestDistanceBetweenCampusBuildings(t *testing.T) {
	techne := Coordinates{Latitude: 4.5798467, Longitude: -74.1587685}
	bloque9 := Coordinates{Latitude: 4.5786743, Longitude: -74.1583200}

	d := Distance(techne, bloque9)

	// The two buildings are roughly 140 meters apart.
	require.Greater(t, d, 0.1)
	require.Less(t, d, 0.2)
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Coordinates{Latitude: 4.5798467, Longitude: -74.1587685}
	b := Coordinates{Latitude: 4.5791225, Longitude: -74.1577513}

	require.InDelta(t, Distance(a, b), Distance(b, a), 1e-12)
}

func TestFormatDistance(t *testing.T) {
	require.Equal(t, "350m", FormatDistance(0.35))
	require.Equal(t, "1.2km", FormatDistance(1.2))
	require.Equal(t, "0m", FormatDistance(0))
}

func TestProximityBuckets(t *testing.T) {
	require.Equal(t, MuyCerca, Proximity(0.05))
	require.Equal(t, Cerca, Proximity(0.3))
	require.Equal(t, Medio, Proximity(0.7))
	require.Equal(t, Lejos, Proximity(2.5))
}

func TestNormalizarEdificio(t *testing.T) {
	require.Equal(t, "TECHNE", NormalizarEdificio("TECNE"))
	require.Equal(t, "TECHNE", NormalizarEdificio("techne"))
	require.Equal(t, "BLOQUE 9", NormalizarEdificio("BLQ 9"))
	require.Equal(t, "BLOQUE 13", NormalizarEdificio("CAFETERIA"))
	require.Equal(t, "EDIFICIO NUEVO", NormalizarEdificio("EDIFICIO NUEVO"))
}

func TestGetEdificioLocation(t *testing.T) {
	loc := GetEdificioLocation("TECNE")
	require.NotNil(t, loc)
	require.Equal(t, "TECHNE", loc.Codigo)
	require.InDelta(t, 4.5798467, loc.Latitude, 1e-9)

	require.Nil(t, GetEdificioLocation("EDIFICIO NUEVO"))
}
