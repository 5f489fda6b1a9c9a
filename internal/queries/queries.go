// Package queries holds the read side: pure functions over a parsed
// Universidad snapshot. They never mutate the tree and are safe to call
// concurrently.
package queries

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

// DocentesActivos lists every block in progress at the given timestamp:
// same weekday and the hour inside [HoraInicio, HoraFin).
func DocentesActivos(u *model.Universidad, t time.Time) []model.DocenteActivo {
	dia := model.DiaDe(t)
	hora := t.Hour()

	var docentes []model.DocenteActivo
	recorrerBloques(u, func(asignatura *model.Asignatura, b *model.BloqueHorario) {
		if b.Dia == dia && b.HoraInicio <= hora && b.HoraFin > hora {
			docentes = append(docentes, proyectar(asignatura, b))
		}
	})
	return docentes
}

// ProximosDocentes lists blocks starting between one and three hours from
// the given timestamp, same weekday.
func ProximosDocentes(u *model.Universidad, t time.Time) []model.DocenteActivo {
	dia := model.DiaDe(t)
	proxima := t.Hour() + 1

	var docentes []model.DocenteActivo
	recorrerBloques(u, func(asignatura *model.Asignatura, b *model.BloqueHorario) {
		if b.Dia == dia && b.HoraInicio >= proxima && b.HoraInicio <= proxima+2 {
			docentes = append(docentes, proyectar(asignatura, b))
		}
	})
	return docentes
}

// AgruparPorBloques buckets records by their literal "inicio-fin" slot.
// Members are sorted by docente, buckets by ascending numeric start hour.
func AgruparPorBloques(docentes []model.DocenteActivo) []model.BloqueDocentes {
	porHorario := make(map[string][]model.DocenteActivo)
	var claves []string

	for _, d := range docentes {
		clave := strconv.Itoa(d.HoraInicio) + "-" + strconv.Itoa(d.HoraFin)
		if _, visto := porHorario[clave]; !visto {
			claves = append(claves, clave)
		}
		porHorario[clave] = append(porHorario[clave], d)
	}

	bloques := make([]model.BloqueDocentes, 0, len(claves))
	for _, clave := range claves {
		miembros := porHorario[clave]
		slices.SortFunc(miembros, func(a, b model.DocenteActivo) int {
			return strings.Compare(a.Docente, b.Docente)
		})
		bloques = append(bloques, model.BloqueDocentes{Horario: clave, Docentes: miembros})
	}

	slices.SortFunc(bloques, func(a, b model.BloqueDocentes) int {
		return horaInicial(a.Horario) - horaInicial(b.Horario)
	})
	return bloques
}

func horaInicial(horario string) int {
	inicio, _, _ := strings.Cut(horario, "-")
	n, _ := strconv.Atoi(inicio)
	return n
}

func proyectar(asignatura *model.Asignatura, b *model.BloqueHorario) model.DocenteActivo {
	return model.DocenteActivo{
		Docente:    b.Docente,
		Asignatura: asignatura.Nombre,
		Salon:      b.Salon,
		Edificio:   b.Edificio,
		HoraInicio: b.HoraInicio,
		HoraFin:    b.HoraFin,
	}
}

func recorrerBloques(u *model.Universidad, visit func(*model.Asignatura, *model.BloqueHorario)) {
	for _, facultad := range u.Facultades {
		for _, carrera := range facultad.Carreras {
			for _, asignatura := range carrera.Asignaturas {
				for _, grupo := range asignatura.Grupos {
					for _, bloque := range grupo.Bloques {
						visit(asignatura, bloque)
					}
				}
			}
		}
	}
}
