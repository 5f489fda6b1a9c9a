package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

func TestExtractLocationTechneLaboratorio(t *testing.T) {
	m := NewEdificioMatcher(DefaultEdificios())

	u := m.ExtractLocation("TECNOLOGICA TECHNE LABORATORIO DE INTELIGENCIA ARTIFICIAL PEREZ JUAN")

	require.Equal(t, "TECHNE", u.Edificio)
	require.Equal(t, "LABORATORIO DE INTELIGENCIA ARTIFICIAL", u.Salon)
}

func TestExtractLocationBloqueConAula(t *testing.T) {
	m := NewEdificioMatcher(DefaultEdificios())

	u := m.ExtractLocation("TECNOLOGICA BLOQUE 9 AULA 101 GARCIA MARIA")

	require.Equal(t, "BLOQUE 9", u.Edificio)
	require.Equal(t, "AULA 101", u.Salon)
}

func TestExtractLocationUnknownBuilding(t *testing.T) {
	m := NewEdificioMatcher(DefaultEdificios())

	u := m.ExtractLocation("TECNOLOGICA EDIFICIO NUEVO PISO 2")

	// With no building match both fields carry the same sentinel; the
	// SALON DESCONOCIDO sentinel is only for a known building.
	require.Equal(t, EdificioDesconocido, u.Edificio)
	require.Equal(t, EdificioDesconocido, u.Salon)
}

func TestExtractLocationGenericAulaFallback(t *testing.T) {
	m := NewEdificioMatcher(DefaultEdificios())

	u := m.ExtractLocation("TECNOLOGICA BLOQUE 9 AULA 999")

	require.Equal(t, "BLOQUE 9", u.Edificio)
	require.Equal(t, "AULA 999", u.Salon)
}

func TestExtractLocationGenericSalaFallback(t *testing.T) {
	m := NewEdificioMatcher([]model.Edificio{
		{Nombre: "BLOQUE 7", Aliases: []string{"BLOQUE 7"}},
	})

	u := m.ExtractLocation("TECNOLOGICA BLOQUE 7 SALA ESPECIAL 3")

	require.Equal(t, "BLOQUE 7", u.Edificio)
	require.Equal(t, "SALA 3", u.Salon)
}

func TestExtractLocationUnknownRoomKeepsBuilding(t *testing.T) {
	m := NewEdificioMatcher([]model.Edificio{
		{Nombre: "BLOQUE 7", Aliases: []string{"BLOQUE 7"}},
	})

	u := m.ExtractLocation("TECNOLOGICA BLOQUE 7 TERRAZA")

	require.Equal(t, "BLOQUE 7", u.Edificio)
	require.Equal(t, SalonDesconocido, u.Salon)
}

// Declaration order is the tie-break when one alias is a substring of
// another building's alias.
func TestExtractLocationFirstMatchWins(t *testing.T) {
	m := NewEdificioMatcher([]model.Edificio{
		{Nombre: "BLOQUE 1", Aliases: []string{"BLOQUE 1"}},
		{Nombre: "BLOQUE 11", Aliases: []string{"BLOQUE 11"}},
	})

	u := m.ExtractLocation("TECNOLOGICA BLOQUE 11 SALON 1")

	require.Equal(t, "BLOQUE 1", u.Edificio)
}

func TestExtractLocationNormalizesWhitespaceAndCase(t *testing.T) {
	m := NewEdificioMatcher(DefaultEdificios())

	u := m.ExtractLocation("  tecnologica   techne   lab ia  ")

	require.Equal(t, "TECHNE", u.Edificio)
	require.Equal(t, "LABORATORIO DE INTELIGENCIA ARTIFICIAL", u.Salon)
}
