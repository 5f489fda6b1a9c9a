package model

import "time"

// Universidad is the root of the parsed schedule tree. It is built once per
// parse and treated as read-only afterwards.
type Universidad struct {
	Facultades         []*Facultad
	FechaActualizacion time.Time
}

// GetOrCreateFacultad returns the facultad with the given name, creating and
// appending it if it does not exist yet. Lookup is by name equality.
func (u *Universidad) GetOrCreateFacultad(nombre string) *Facultad {
	for _, f := range u.Facultades {
		if f.Nombre == nombre {
			return f
		}
	}
	f := &Facultad{Nombre: nombre}
	u.Facultades = append(u.Facultades, f)
	return f
}

type Facultad struct {
	Nombre   string
	Carreras []*Carrera
}

type Carrera struct {
	Nombre      string
	Codigo      string
	Asignaturas []*Asignatura
}

// Asignatura starts with an empty Codigo; the parser back-fills it from the
// first schedule line or synthesizes one when the asignatura closes.
type Asignatura struct {
	Codigo string
	Nombre string
	Grupos []*Grupo
}

type Grupo struct {
	Numero    string
	Inscritos int
	Bloques   []*BloqueHorario
}

// BloqueHorario is one scheduled class meeting. Hours form the half-open
// interval [HoraInicio, HoraFin) on a 24h clock. Docente is either a
// canonical roster name or empty when unresolved.
type BloqueHorario struct {
	CodigoAsignatura string
	Dia              DiaSemana
	HoraInicio       int
	HoraFin          int
	Sede             string
	Edificio         string
	Salon            string
	Docente          string
}
