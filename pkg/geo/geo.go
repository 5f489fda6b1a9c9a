// Package geo carries the campus building coordinates and the distance
// helpers the presentation layer feeds parsed schedule data into.
package geo

import (
	"fmt"
	"math"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

const earthRadiusKm = 6371.0

// Distance returns the Haversine distance between two points in kilometers.
func Distance(p1, p2 Coordinates) float64 {
	dLat := radians(p2.Latitude - p1.Latitude)
	dLon := radians(p2.Longitude - p1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(p1.Latitude))*math.Cos(radians(p2.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// FormatDistance renders a distance as "350m" below one kilometer and
// "1.2km" above.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%dm", int(math.Round(distanceKm*1000)))
	}
	return fmt.Sprintf("%.1fkm", distanceKm)
}

// ProximityLevel buckets a distance for display.
type ProximityLevel string

const (
	MuyCerca ProximityLevel = "muy-cerca"
	Cerca    ProximityLevel = "cerca"
	Medio    ProximityLevel = "medio"
	Lejos    ProximityLevel = "lejos"
)

func Proximity(distanceKm float64) ProximityLevel {
	switch {
	case distanceKm < 0.1:
		return MuyCerca
	case distanceKm < 0.5:
		return Cerca
	case distanceKm < 1.0:
		return Medio
	default:
		return Lejos
	}
}
