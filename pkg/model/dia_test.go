package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDia(t *testing.T) {
	dia, ok := ParseDia("MIERCOLES")
	require.True(t, ok)
	require.Equal(t, Miercoles, dia)

	_, ok = ParseDia("FERIADO")
	require.False(t, ok)

	// Day tokens in the source document are always uppercase.
	_, ok = ParseDia("lunes")
	require.False(t, ok)
}

func TestDiaDe(t *testing.T) {
	domingo := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	require.Equal(t, Domingo, DiaDe(domingo))

	lunes := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	require.Equal(t, Lunes, DiaDe(lunes))

	sabado := time.Date(2024, 1, 13, 12, 0, 0, 0, time.UTC)
	require.Equal(t, Sabado, DiaDe(sabado))
}

func TestGetOrCreateFacultad(t *testing.T) {
	u := &Universidad{}

	f1 := u.GetOrCreateFacultad("FACULTAD TECNOLÓGICA")
	f2 := u.GetOrCreateFacultad("FACULTAD TECNOLÓGICA")

	require.Same(t, f1, f2)
	require.Len(t, u.Facultades, 1)
}
