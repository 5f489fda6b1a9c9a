package model

// BloqueCSVRow is the flattened export format for a parsed schedule tree.
type BloqueCSVRow struct {
	Carrera          string `csv:"carrera"`
	CodigoAsignatura string `csv:"codigo_asignatura"`
	Asignatura       string `csv:"asignatura"`
	Grupo            string `csv:"grupo"`
	Inscritos        int    `csv:"inscritos"`
	Dia              string `csv:"dia"`
	HoraInicio       int    `csv:"hora_inicio"`
	HoraFin          int    `csv:"hora_fin"`
	Sede             string `csv:"sede"`
	Edificio         string `csv:"edificio"`
	Salon            string `csv:"salon"`
	Docente          string `csv:"docente"`
}

// EdificioCSVRow is one row of a building dictionary override file. Rows that
// share an edificio fold into a single Edificio entry; aliases are separated
// with '|'.
type EdificioCSVRow struct {
	Edificio        string `csv:"edificio"`
	EdificioAliases string `csv:"edificio_aliases"`
	Salon           string `csv:"salon"`
	SalonAliases    string `csv:"salon_aliases"`
}
