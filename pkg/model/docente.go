package model

// DocenteActivo is a flat projection of a BloqueHorario used by the query
// side. It copies the scalar fields it needs and owns no part of the tree.
type DocenteActivo struct {
	Docente    string
	Asignatura string
	Salon      string
	Edificio   string
	HoraInicio int
	HoraFin    int
}

// BloqueDocentes groups DocenteActivo records that share the same time slot.
// Horario is the literal "inicio-fin" key, e.g. "6-8".
type BloqueDocentes struct {
	Horario  string
	Docentes []DocenteActivo
}
