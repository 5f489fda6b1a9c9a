package geo

import "strings"

// EdificioLocation ties a canonical building code to its coordinates on the
// Facultad Tecnológica campus.
type EdificioLocation struct {
	Codigo    string
	Nombre    string
	Latitude  float64
	Longitude float64
	Aliases   []string
}

// Campus building coordinates, keyed by the canonical codes the location
// matcher produces.
var edificios = []EdificioLocation{
	{
		Codigo:    "TECHNE",
		Nombre:    "Edificio TECHNE",
		Latitude:  4.5798467,
		Longitude: -74.1587685,
		Aliases:   []string{"TECHNE", "TECNE", "TECHNE BUILDING"},
	},
	{
		Codigo:    "BLOQUE 1-2-3-4",
		Nombre:    "Bloque 1-2-3-4",
		Latitude:  4.5794337,
		Longitude: -74.1578378,
		Aliases:   []string{"BLOQUE 1-2-3-4", "BLOQUE 1, 2, 3 Y 4", "BLOQUE 1-4", "B-1", "B-2", "B-3", "B-4"},
	},
	{
		Codigo:    "BLOQUE 9",
		Nombre:    "Bloque 9",
		Latitude:  4.5786743,
		Longitude: -74.1583200,
		Aliases:   []string{"BLOQUE 9", "BLQ 9"},
	},
	{
		Codigo:    "BLOQUE 11-12",
		Nombre:    "Bloque 11-12",
		Latitude:  4.5789464,
		Longitude: -74.1581258,
		Aliases:   []string{"BLOQUE 11-12", "BLOQUE 11 Y 12"},
	},
	{
		Codigo:    "BLOQUE 5",
		Nombre:    "Bloque 5",
		Latitude:  4.5793208,
		Longitude: -74.1583214,
		Aliases:   []string{"BLOQUE 5", "BLQ 5"},
	},
	{
		Codigo:    "BLOQUE 13",
		Nombre:    "Bloque 13 - Cafetería",
		Latitude:  4.5791225,
		Longitude: -74.1577513,
		Aliases:   []string{"BLOQUE 13 - CAFETERIA", "BLOQUE 13", "CAFETERIA"},
	},
}

// AllEdificios returns the known building locations.
func AllEdificios() []EdificioLocation {
	out := make([]EdificioLocation, len(edificios))
	copy(out, edificios)
	return out
}

// NormalizarEdificio maps a raw building name to its canonical code via the
// alias table. Unknown names pass through unchanged.
func NormalizarEdificio(raw string) string {
	limpio := strings.TrimSpace(strings.ToUpper(raw))
	for _, e := range edificios {
		for _, alias := range e.Aliases {
			a := strings.ToUpper(alias)
			if a == limpio || strings.Contains(limpio, a) || strings.Contains(a, limpio) {
				return e.Codigo
			}
		}
	}
	return raw
}

// GetEdificioLocation resolves a raw building name to its location, or nil
// when the building is not on the campus map.
func GetEdificioLocation(raw string) *EdificioLocation {
	codigo := NormalizarEdificio(raw)
	for i := range edificios {
		if edificios[i].Codigo == codigo {
			return &edificios[i]
		}
	}
	return nil
}
