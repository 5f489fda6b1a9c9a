package csvio

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

// ExportBloques flattens the schedule tree into BloqueCSVRow records and
// writes them to the given path.
func ExportBloques(u *model.Universidad, path string) (string, error) {
	rows := FormatBloques(u)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creando archivo de exportación %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return "", fmt.Errorf("escribiendo exportación %s: %w", path, err)
	}
	return path, nil
}

// ExportBloquesString renders the flattened schedule tree as a CSV string.
func ExportBloquesString(u *model.Universidad) (string, error) {
	rows := FormatBloques(u)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("serializando exportación: %w", err)
	}
	return str, nil
}

// FormatBloques walks the tree and produces one row per BloqueHorario, in
// tree order.
func FormatBloques(u *model.Universidad) []*model.BloqueCSVRow {
	var rows []*model.BloqueCSVRow
	for _, facultad := range u.Facultades {
		for _, carrera := range facultad.Carreras {
			for _, asignatura := range carrera.Asignaturas {
				for _, grupo := range asignatura.Grupos {
					for _, bloque := range grupo.Bloques {
						rows = append(rows, &model.BloqueCSVRow{
							Carrera:          carrera.Nombre,
							CodigoAsignatura: asignatura.Codigo,
							Asignatura:       asignatura.Nombre,
							Grupo:            grupo.Numero,
							Inscritos:        grupo.Inscritos,
							Dia:              string(bloque.Dia),
							HoraInicio:       bloque.HoraInicio,
							HoraFin:          bloque.HoraFin,
							Sede:             bloque.Sede,
							Edificio:         bloque.Edificio,
							Salon:            bloque.Salon,
							Docente:          bloque.Docente,
						})
					}
				}
			}
		}
	}
	return rows
}

// PrintBloques prints the weekly schedule grouped by carrera.
func PrintBloques(u *model.Universidad) {
	rows := FormatBloques(u)
	slices.SortFunc(rows, func(a, b *model.BloqueCSVRow) int {
		if c := strings.Compare(a.Carrera, b.Carrera); c != 0 {
			return c
		}
		if c := strings.Compare(a.Asignatura, b.Asignatura); c != 0 {
			return c
		}
		if c := a.HoraInicio - b.HoraInicio; c != 0 {
			return c
		}
		return strings.Compare(a.Grupo, b.Grupo)
	})

	carreraVista := make(map[string]bool)
	for _, r := range rows {
		if !carreraVista[r.Carrera] {
			carreraVista[r.Carrera] = true
			fmt.Printf("\n%s %s %s\n", strings.Repeat("-", 8), r.Carrera, strings.Repeat("-", 8))
		}
		docente := r.Docente
		if docente == "" {
			docente = "(docente no identificado)"
		}
		fmt.Printf("%-10s %2d-%-2d  %-40s GRP %-4s %s\n", r.Dia, r.HoraInicio, r.HoraFin, r.Asignatura, r.Grupo, docente)
	}
	fmt.Printf("Printed rows: %d\n", len(rows))
}
