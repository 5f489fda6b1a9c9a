package model

// Edificio is one entry of the building reference dictionary. Order matters:
// matching scans buildings and salones in declaration order, first match wins.
type Edificio struct {
	Nombre  string
	Aliases []string
	Salones []Salon
}

type Salon struct {
	Nombre  string
	Aliases []string
}

// Ubicacion is a resolved (building, room) pair. Either field may hold a
// sentinel when resolution failed.
type Ubicacion struct {
	Edificio string
	Salon    string
}
