package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

func TestLoadDocentesPreservaOrden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docentes.txt")
	contenido := "GARCIA MARIA\n\n  RODRIGUEZ CARLOS  \nPEÑA JULIÁN\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	docentes, err := LoadDocentes(path)

	require.NoError(t, err)
	require.Equal(t, []string{"GARCIA MARIA", "RODRIGUEZ CARLOS", "PEÑA JULIÁN"}, docentes)
}

func TestLoadDocentesArchivoInexistente(t *testing.T) {
	_, err := LoadDocentes(filepath.Join(t.TempDir(), "no-existe.txt"))
	require.Error(t, err)
}

func TestLoadEdificiosAgrupaPorEdificio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edificios.csv")
	contenido := `edificio,edificio_aliases,salon,salon_aliases
TECHNE,TECHNE|TECNE,LABORATORIO DE INTELIGENCIA ARTIFICIAL,LAB IA
TECHNE,TECHNE|TECNE,SALA DE INFORMATICA 1,SALA INFO 1
BLOQUE 9,BLOQUE 9|BLQ 9,AULA 101,
`
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	edificios, err := LoadEdificios(path, ',')

	require.NoError(t, err)
	require.Len(t, edificios, 2)

	techne := edificios[0]
	require.Equal(t, "TECHNE", techne.Nombre)
	require.Equal(t, []string{"TECHNE", "TECNE"}, techne.Aliases)
	require.Len(t, techne.Salones, 2)
	require.Equal(t, "LABORATORIO DE INTELIGENCIA ARTIFICIAL", techne.Salones[0].Nombre)
	require.Equal(t, []string{"LAB IA"}, techne.Salones[0].Aliases)

	bloque9 := edificios[1]
	require.Equal(t, "BLOQUE 9", bloque9.Nombre)
	require.Len(t, bloque9.Salones, 1)
	require.Empty(t, bloque9.Salones[0].Aliases)
}

func TestLoadEdificiosOtroDelimitador(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edificios.csv")
	contenido := "edificio;edificio_aliases;salon;salon_aliases\nBLOQUE 5;BLOQUE 5;SALON 105;AULA 105\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	edificios, err := LoadEdificios(path, ';')

	require.NoError(t, err)
	require.Len(t, edificios, 1)
	require.Equal(t, "SALON 105", edificios[0].Salones[0].Nombre)
}

func arbolDePrueba() *model.Universidad {
	return &model.Universidad{
		Facultades: []*model.Facultad{{
			Nombre: "FACULTAD TECNOLÓGICA",
			Carreras: []*model.Carrera{{
				Nombre: "TECNOLOGIA EN SISTEMATIZACION DE DATOS",
				Codigo: "578",
				Asignaturas: []*model.Asignatura{{
					Codigo: "12345",
					Nombre: "PROGRAMACION AVANZADA",
					Grupos: []*model.Grupo{{
						Numero:    "1",
						Inscritos: 25,
						Bloques: []*model.BloqueHorario{{
							CodigoAsignatura: "12345",
							Dia:              model.Lunes,
							HoraInicio:       8,
							HoraFin:          10,
							Sede:             "TECNOLOGICA",
							Edificio:         "BLOQUE 9",
							Salon:            "AULA 101",
							Docente:          "GARCIA MARIA",
						}},
					}},
				}},
			}},
		}},
	}
}

func TestFormatBloquesAplanaElArbol(t *testing.T) {
	rows := FormatBloques(arbolDePrueba())

	require.Len(t, rows, 1)
	r := rows[0]
	require.Equal(t, "TECNOLOGIA EN SISTEMATIZACION DE DATOS", r.Carrera)
	require.Equal(t, "12345", r.CodigoAsignatura)
	require.Equal(t, "1", r.Grupo)
	require.Equal(t, 25, r.Inscritos)
	require.Equal(t, "LUNES", r.Dia)
	require.Equal(t, "GARCIA MARIA", r.Docente)
}

func TestExportBloquesString(t *testing.T) {
	csv, err := ExportBloquesString(arbolDePrueba())

	require.NoError(t, err)
	lineas := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lineas, 2)
	require.Contains(t, lineas[0], "codigo_asignatura")
	require.Contains(t, lineas[1], "GARCIA MARIA")
	require.Contains(t, lineas[1], "AULA 101")
}

func TestExportBloquesEscribeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")

	escrito, err := ExportBloques(arbolDePrueba(), path)

	require.NoError(t, err)
	require.Equal(t, path, escrito)

	contenido, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contenido), "PROGRAMACION AVANZADA")
}
